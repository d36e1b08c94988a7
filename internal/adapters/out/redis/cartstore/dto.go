// Package cartstore keeps customer carts in Redis as one JSON blob per
// customer. A cart is working state, not a ledger, so a key-value store with
// expiry fits it better than a relational table.
package cartstore

import (
	"fmt"

	"grocery/internal/core/domain/model/cart"
)

// CartDTO is the JSON shape stored under the customer's key.
type CartDTO struct {
	CustomerID string    `json:"customerId"`
	Items      []ItemDTO `json:"items"`
}

// ItemDTO mirrors one cart line with its price snapshot.
type ItemDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	ImageRef  string  `json:"imageRef"`
	Quantity  int     `json:"quantity"`
}

func cartKey(customerID string) string {
	return fmt.Sprintf("cart:%s", customerID)
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	items := aggregate.Snapshot()
	dto := CartDTO{
		CustomerID: aggregate.CustomerID(),
		Items:      make([]ItemDTO, 0, len(items)),
	}

	for _, item := range items {
		dto.Items = append(dto.Items, ItemDTO{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			ImageRef:  item.ImageRef(),
			Quantity:  item.Quantity(),
		})
	}

	return dto
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	items := make([]cart.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		item, err := cart.NewItem(line.ProductID, line.Name, line.UnitPrice, line.ImageRef, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return cart.RestoreCart(dto.CustomerID, items)
}
