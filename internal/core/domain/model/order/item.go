package order

import (
	"errors"
	"fmt"

	"grocery/internal/pkg/errs"
)

// Item is one line of the order's immutable snapshot: the cart line as it was
// at submission time, with the unit price locked in. Later catalog price
// changes never touch it.
type Item struct {
	productID string
	name      string
	unitPrice float64
	imageRef  string
	quantity  int
}

// NewItem creates a snapshot line with validation.
func NewItem(productID, name string, unitPrice float64, imageRef string, quantity int) (Item, error) {
	item := Item{imageRef: imageRef}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// ProductID returns the catalog product reference.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the product name captured at submission.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the locked per-unit price.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// ImageRef returns the product image reference.
func (i Item) ImageRef() string {
	return i.imageRef
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Amount returns the line total, unit price times quantity.
func (i Item) Amount() float64 {
	return i.unitPrice * float64(i.quantity)
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
