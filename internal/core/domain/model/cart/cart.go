package cart

import (
	"errors"

	"grocery/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// Cart is the aggregate holding a single customer's pending purchases.
//
// Cart follows these invariants:
//   - Lines are unique by product id; adding a known product merges quantities
//   - Every line has quantity >= 1; a line driven to 0 is removed, not kept
//   - Total and item count are derived from the line list on every read
//
// Mutation is single-actor: only the owning customer's client operates on a
// cart, so the aggregate needs no internal locking.
type Cart struct {
	customerID    string
	items         []Item
	isConstructed bool
}

// NewCart creates an empty cart for the given customer.
func NewCart(customerID string) (*Cart, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	return &Cart{
		customerID:    customerID,
		items:         make([]Item, 0),
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persisted line items.
// Used by the cart store when loading the durable copy.
func RestoreCart(customerID string, items []Item) (*Cart, error) {
	c, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}

	c.items = append(c.items, items...)
	return c, nil
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() string {
	return c.customerID
}

// Add puts an item into the cart. If a line with the same product id already
// exists the quantities are merged into that line; otherwise a new line is
// appended.
func (c *Cart) Add(item Item) {
	for i, existing := range c.items {
		if existing.ProductID() == item.ProductID() {
			c.items[i] = existing.withQuantity(existing.Quantity() + item.Quantity())
			return
		}
	}

	c.items = append(c.items, item)
}

// SetQuantity changes the quantity of an existing line. A quantity of zero or
// less removes the line. Returns ObjectNotFoundError when the product is not
// in the cart.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	for i, existing := range c.items {
		if existing.ProductID() != productID {
			continue
		}

		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}

		c.items[i] = existing.withQuantity(quantity)
		return nil
	}

	return errs.NewObjectNotFoundError("productID", productID)
}

// Remove deletes the line for the given product. Removing a product that is
// not in the cart is a no-op.
func (c *Cart) Remove(productID string) {
	for i, existing := range c.items {
		if existing.ProductID() == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear drops all lines. Called after a successful order submission.
func (c *Cart) Clear() {
	c.items = c.items[:0]
}

// Snapshot returns a copy of the current lines. Mutating the returned slice
// does not affect the cart.
func (c *Cart) Snapshot() []Item {
	snapshot := make([]Item, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// Total returns the sum of unit price times quantity over all lines,
// recomputed on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Amount()
	}
	return total
}

// ItemCount returns the total number of units across all lines. The badge
// count shown to the customer is always derived here, never incremented
// independently.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity()
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
