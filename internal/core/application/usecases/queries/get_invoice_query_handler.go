package queries

import (
	"context"

	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
)

// GetInvoiceQueryHandler projects an order into its invoice view.
// The projection needs the full aggregate, not a flat row, so this handler
// reads through the repository instead of raw SQL and hands the result to the
// pure projector. The same stored order always yields the same invoice.
type GetInvoiceQueryHandler struct {
	orders    ports.OrderRepository
	projector services.InvoiceProjector
}

// NewGetInvoiceQueryHandler creates a handler for invoice reads.
func NewGetInvoiceQueryHandler(orders ports.OrderRepository) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{
		orders:    orders,
		projector: services.NewInvoiceProjector(),
	}
}

// Handle loads the order and projects its invoice.
// Returns ObjectNotFoundError when the order does not exist.
func (h GetInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceQuery,
) (services.Invoice, error) {
	if err := query.Validate(); err != nil {
		return services.Invoice{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return services.Invoice{}, err
	}

	return h.projector.Project(aggregate)
}
