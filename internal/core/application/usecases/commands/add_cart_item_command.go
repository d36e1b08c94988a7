package commands

import (
	"errors"

	"grocery/internal/core/domain/model/cart"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to put a product into a customer's
// cart. The catalog data travels with the command so the cart line captures
// the price as it was at add time.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID string
	item       cart.Item

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a product line to a cart.
// Validates that the customer id is present and the line data forms a valid
// cart item.
func NewAddCartItemCommand(
	customerID, productID, name string,
	unitPrice float64,
	imageRef string,
	quantity int,
) (AddCartItemCommand, error) {
	if customerID == "" {
		return AddCartItemCommand{}, errs.NewValueIsRequiredError("customerID")
	}

	item, err := cart.NewItem(productID, name, unitPrice, imageRef, quantity)
	if err != nil {
		return AddCartItemCommand{}, err
	}

	return AddCartItemCommand{
		customerID: customerID,
		item:       item,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddCartItemCommand) CustomerID() string {
	return c.customerID
}

// Item returns the cart line to add.
func (c AddCartItemCommand) Item() cart.Item {
	return c.item
}
