package ports

import (
	"context"

	"grocery/internal/core/domain/model/cart"
)

// CartStore is the durable load/save boundary for carts. The aggregate lives
// in memory while being mutated; the store keeps the copy that survives
// client reloads. Load of an absent cart returns a fresh empty one, never an
// error.
type CartStore interface {
	// Load retrieves the customer's cart, or a new empty cart when none
	// is stored.
	Load(ctx context.Context, customerID string) (*cart.Cart, error)

	// Save persists the cart, replacing any stored copy.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Clear drops the stored cart. Called after a successful order
	// submission.
	Clear(ctx context.Context, customerID string) error
}

// CartChangeNotifier receives the recomputed item count after every persisted
// cart mutation. The count is always derived from the canonical line list so
// badge displays cannot drift.
type CartChangeNotifier interface {
	CartChanged(ctx context.Context, customerID string, itemCount int)
}
