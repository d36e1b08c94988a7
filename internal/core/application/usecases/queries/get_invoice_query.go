package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrGetInvoiceQueryIsNotConstructed = errors.New(
	"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
)

// GetInvoiceQuery retrieves the invoice projection for one order.
type GetInvoiceQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a query for one order's invoice.
func NewGetInvoiceQuery(orderID kernel.UUID) (GetInvoiceQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetInvoiceQuery{}, err
	}

	return GetInvoiceQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// OrderID returns the order to invoice.
func (q GetInvoiceQuery) OrderID() kernel.UUID {
	return q.orderID
}
