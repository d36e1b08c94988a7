package commands

import (
	"context"

	"grocery/internal/core/ports"
)

// RemoveCartItemCommandHandler handles cart line removals.
type RemoveCartItemCommandHandler struct {
	cartStore ports.CartStore
	notifier  ports.CartChangeNotifier
}

// NewRemoveCartItemCommandHandler creates a handler for cart removals.
func NewRemoveCartItemCommandHandler(
	cartStore ports.CartStore,
	notifier ports.CartChangeNotifier,
) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		cartStore: cartStore,
		notifier:  notifier,
	}
}

// Handle removes the product's line from the cart and persists the result.
// Absent products are a no-op, but the save still runs so the stored copy
// always matches what the customer last saw.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.cartStore.Load(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	aggregate.Remove(cmd.ProductID())

	if err = h.cartStore.Save(ctx, aggregate); err != nil {
		return err
	}

	h.notifier.CartChanged(ctx, cmd.CustomerID(), aggregate.ItemCount())
	return nil
}
