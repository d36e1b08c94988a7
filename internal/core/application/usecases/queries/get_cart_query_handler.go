package queries

import (
	"context"

	"grocery/internal/core/ports"
)

// GetCartQueryHandler reads a customer's cart from the cart store.
// Unlike the database-backed queries this one goes through the CartStore port:
// carts live in the key-value store, not in Postgres.
type GetCartQueryHandler struct {
	cartStore ports.CartStore
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(cartStore ports.CartStore) GetCartQueryHandler {
	return GetCartQueryHandler{cartStore: cartStore}
}

// Handle loads the cart and maps it to the read model. An absent cart comes
// back as an empty one.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	aggregate, err := h.cartStore.Load(ctx, query.CustomerID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	items := make([]CartItemResponse, 0, len(aggregate.Snapshot()))
	for _, line := range aggregate.Snapshot() {
		items = append(items, CartItemResponse{
			ProductID: line.ProductID(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice(),
			ImageRef:  line.ImageRef(),
			Quantity:  line.Quantity(),
			Amount:    line.Amount(),
		})
	}

	return GetCartQueryResponse{
		CustomerID: query.CustomerID(),
		Items:      items,
		Total:      aggregate.Total(),
		ItemCount:  aggregate.ItemCount(),
	}, nil
}
