package cart

import (
	"errors"
	"fmt"

	"grocery/internal/pkg/errs"
)

// Item is one product line in a cart: the product reference, the display data
// captured from the catalog, and the quantity the customer wants.
//
// Item is a value object. The unit price recorded here is the catalog price at
// the moment the product was added; order submission locks it into the order
// snapshot.
type Item struct {
	productID string
	name      string
	unitPrice float64
	imageRef  string
	quantity  int
}

// NewItem creates a cart line item with validation.
// Product id and name are required, unit price must not be negative, and
// quantity must be at least 1.
func NewItem(productID, name string, unitPrice float64, imageRef string, quantity int) (Item, error) {
	item := Item{}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.imageRef = imageRef
	return item, nil
}

// ProductID returns the catalog product reference.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the product display name captured when the item was added.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price captured when the item was added.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// ImageRef returns the product image reference for display.
func (i Item) ImageRef() string {
	return i.imageRef
}

// Quantity returns how many units of the product the line holds.
func (i Item) Quantity() int {
	return i.quantity
}

// Amount returns the line total, unit price times quantity.
func (i Item) Amount() float64 {
	return i.unitPrice * float64(i.quantity)
}

// withQuantity returns a copy of the item holding the given quantity.
// The caller guarantees quantity >= 1.
func (i Item) withQuantity(quantity int) Item {
	i.quantity = quantity
	return i
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
