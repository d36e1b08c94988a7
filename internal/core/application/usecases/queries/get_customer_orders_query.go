package queries

import (
	"errors"
	"time"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history, newest first.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for one customer's orders.
func NewGetCustomerOrdersQuery(customerID string) (GetCustomerOrdersQuery, error) {
	if customerID == "" {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customerID")
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns whose orders to list.
func (q GetCustomerOrdersQuery) CustomerID() string {
	return q.customerID
}

// GetCustomerOrdersQueryResponse is one row of a customer's order history.
type GetCustomerOrdersQueryResponse struct {
	OrderID         string    `json:"order_id"`
	TotalPrice      float64   `json:"total_price"`
	DeliveryAddress string    `json:"delivery_address"`
	PaymentMethod   string    `json:"payment_method"`
	Status          string    `json:"status"`
	ItemCount       int       `json:"item_count"`
	CreatedAt       time.Time `json:"created_at"`
}
