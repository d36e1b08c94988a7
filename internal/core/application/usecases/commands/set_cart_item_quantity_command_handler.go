package commands

import (
	"context"

	"grocery/internal/core/ports"
)

// SetCartItemQuantityCommandHandler handles quantity changes on cart lines.
type SetCartItemQuantityCommandHandler struct {
	cartStore ports.CartStore
	notifier  ports.CartChangeNotifier
}

// NewSetCartItemQuantityCommandHandler creates a handler for cart quantity changes.
func NewSetCartItemQuantityCommandHandler(
	cartStore ports.CartStore,
	notifier ports.CartChangeNotifier,
) SetCartItemQuantityCommandHandler {
	return SetCartItemQuantityCommandHandler{
		cartStore: cartStore,
		notifier:  notifier,
	}
}

// Handle changes a line's quantity, dropping the line when the quantity is
// non-positive. Returns ObjectNotFoundError when the product is not in the
// cart.
func (h SetCartItemQuantityCommandHandler) Handle(ctx context.Context, cmd SetCartItemQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.cartStore.Load(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = aggregate.SetQuantity(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = h.cartStore.Save(ctx, aggregate); err != nil {
		return err
	}

	h.notifier.CartChanged(ctx, cmd.CustomerID(), aggregate.ItemCount())
	return nil
}
