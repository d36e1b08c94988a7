package queries

import (
	"context"
	"time"

	"grocery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler retrieves the unassigned order queue from the
// database. Oldest first so the queue drains fairly.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for dispatch queue reads.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query for all pending orders.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			total_price,
			delivery_address,
			payment_method,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.StatusPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingOrdersQueryResponse
		var createdAt time.Time

		err = rows.Scan(
			&resp.OrderID,
			&resp.CustomerID,
			&resp.TotalPrice,
			&resp.DeliveryAddress,
			&resp.PaymentMethod,
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
