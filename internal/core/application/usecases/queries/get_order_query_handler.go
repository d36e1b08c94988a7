package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order from the database.
// Joins the delivery task and the agent directory so the customer sees who is
// carrying the order and how far along it is.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns ObjectNotFoundError when the order does not exist. The delivery
// partner block is present only when a task is attached.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.items,
			o.total_price,
			o.delivery_address,
			o.payment_method,
			o.status,
			o.created_at,
			a.name,
			a.phone,
			t.status
		FROM orders o
		LEFT JOIN tasks t ON t.order_id = o.id
		LEFT JOIN agents a ON a.id = t.agent_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		resp       GetOrderQueryResponse
		id         string
		itemsJSON  []byte
		createdAt  time.Time
		agentName  sql.NullString
		agentPhone sql.NullString
		taskStatus sql.NullString
	)

	err := row.Scan(
		&id,
		&resp.CustomerID,
		&itemsJSON,
		&resp.TotalPrice,
		&resp.DeliveryAddress,
		&resp.PaymentMethod,
		&resp.Status,
		&createdAt,
		&agentName,
		&agentPhone,
		&taskStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.OrderID = id
	resp.CreatedAt = createdAt.UTC()

	if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if taskStatus.Valid {
		resp.DeliveryPartner = &DeliveryPartnerResponse{
			Name:       agentName.String,
			Phone:      agentPhone.String,
			TaskStatus: taskStatus.String,
		}
	}

	return resp, nil
}
