// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read straight from storage and return plain read models;
// they never mutate state and never go through the aggregates' write paths.
package queries

import (
	"errors"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's current cart contents.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for one customer's cart.
func NewGetCartQuery(customerID string) (GetCartQuery, error) {
	if customerID == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("customerID")
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() string {
	return q.customerID
}

// CartItemResponse is one cart line in the read model.
type CartItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	ImageRef  string  `json:"imageRef,omitempty"`
	Quantity  int     `json:"quantity"`
	Amount    float64 `json:"amount"`
}

// GetCartQueryResponse is the cart read model: the lines plus the derived
// total and badge count.
type GetCartQueryResponse struct {
	CustomerID string             `json:"customerId"`
	Items      []CartItemResponse `json:"items"`
	Total      float64            `json:"total"`
	ItemCount  int                `json:"itemCount"`
}
