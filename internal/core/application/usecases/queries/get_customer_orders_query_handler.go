package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists a customer's orders from the database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history reads.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the history query. Rows come back newest first; the item
// count is derived from the stored snapshot so it always matches what was
// ordered.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_price,
			delivery_address,
			payment_method,
			status,
			(
				SELECT COALESCE(SUM((line->>'quantity')::int), 0)
				FROM jsonb_array_elements(items) AS line
			),
			created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustomerOrdersQueryResponse
		var createdAt time.Time

		err = rows.Scan(
			&resp.OrderID,
			&resp.TotalPrice,
			&resp.DeliveryAddress,
			&resp.PaymentMethod,
			&resp.Status,
			&resp.ItemCount,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		resp.CreatedAt = createdAt.UTC()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
