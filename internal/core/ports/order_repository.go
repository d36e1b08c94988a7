// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the cart store, the agent directory, and the
// outbound notification interfaces. Adapters implement these; handlers depend
// on them.
package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All reads re-fetch from storage; no caller keeps a mutable copy across
// actor boundaries.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders a customer has placed,
	// newest first.
	GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)

	// GetAllPending retrieves orders awaiting agent assignment,
	// oldest first so the queue drains fairly.
	GetAllPending(ctx context.Context) ([]*order.Order, error)
}
