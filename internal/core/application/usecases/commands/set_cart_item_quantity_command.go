package commands

import (
	"errors"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrSetCartItemQuantityCommandIsNotConstructed = errors.New(
	"SetCartItemQuantityCommand must be created via NewSetCartItemQuantityCommand constructor",
)

// SetCartItemQuantityCommand represents a request to change the quantity of a
// line already in the cart. A quantity of zero or less removes the line.
type SetCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	customerID string
	productID  string
	quantity   int

	guard guard.ConstructorGuard
}

// NewSetCartItemQuantityCommand creates a command to change a line's quantity.
// The quantity is deliberately not range checked here: non-positive values are
// a legal way to drop the line.
func NewSetCartItemQuantityCommand(customerID, productID string, quantity int) (SetCartItemQuantityCommand, error) {
	if err := errors.Join(
		requireString("customerID", customerID),
		requireString("productID", productID),
	); err != nil {
		return SetCartItemQuantityCommand{}, err
	}

	return SetCartItemQuantityCommand{
		customerID: customerID,
		productID:  productID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartItemQuantityCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c SetCartItemQuantityCommand) CustomerID() string {
	return c.customerID
}

// ProductID returns the product whose line is changed.
func (c SetCartItemQuantityCommand) ProductID() string {
	return c.productID
}

// Quantity returns the requested quantity.
func (c SetCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

func requireString(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
