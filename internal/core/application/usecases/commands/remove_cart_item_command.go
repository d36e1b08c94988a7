package commands

import (
	"errors"

	"grocery/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to delete a line from the cart.
// Removing a product that is not in the cart succeeds without effect.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID string
	productID  string

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(customerID, productID string) (RemoveCartItemCommand, error) {
	if err := errors.Join(
		requireString("customerID", customerID),
		requireString("productID", productID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return RemoveCartItemCommand{
		customerID: customerID,
		productID:  productID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c RemoveCartItemCommand) CustomerID() string {
	return c.customerID
}

// ProductID returns the product whose line is removed.
func (c RemoveCartItemCommand) ProductID() string {
	return c.productID
}
