package commands

import (
	"context"

	"grocery/internal/core/ports"
)

// AddCartItemCommandHandler handles adding product lines to carts.
// Merges quantities when the product is already in the cart and notifies the
// badge counter with the recomputed item count.
type AddCartItemCommandHandler struct {
	cartStore ports.CartStore
	notifier  ports.CartChangeNotifier
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(
	cartStore ports.CartStore,
	notifier ports.CartChangeNotifier,
) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		cartStore: cartStore,
		notifier:  notifier,
	}
}

// Handle loads the customer's cart, merges the new line into it, and persists
// the result. The item count pushed to the notifier is derived from the saved
// line list.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.cartStore.Load(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	aggregate.Add(cmd.Item())

	if err = h.cartStore.Save(ctx, aggregate); err != nil {
		return err
	}

	h.notifier.CartChanged(ctx, cmd.CustomerID(), aggregate.ItemCount())
	return nil
}
