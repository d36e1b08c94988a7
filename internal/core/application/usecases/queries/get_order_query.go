package queries

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its item snapshot and, once an agent
// holds it, the delivery partner details. This is the read the customer's
// tracking view polls.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", view.OrderID, view.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one snapshot line in the order read model.
type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	ImageRef  string  `json:"imageRef,omitempty"`
	Quantity  int     `json:"quantity"`
}

// DeliveryPartnerResponse describes the agent working an order, shown to the
// customer once the order leaves pending.
type DeliveryPartnerResponse struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	TaskStatus string `json:"task_status"`
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	OrderID         string                   `json:"order_id"`
	CustomerID      string                   `json:"customer_id"`
	Items           []OrderItemResponse      `json:"items"`
	TotalPrice      float64                  `json:"total_price"`
	DeliveryAddress string                   `json:"delivery_address"`
	PaymentMethod   string                   `json:"payment_method"`
	Status          string                   `json:"status"`
	CreatedAt       time.Time                `json:"created_at"`
	DeliveryPartner *DeliveryPartnerResponse `json:"delivery_partner,omitempty"`
}
