package order

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for one grocery order. It owns the price-locked
// item snapshot, the delivery details, and the lifecycle status; every status
// change goes through the Status state machine.
//
// Order follows these invariants:
//   - Items are a non-empty immutable snapshot taken at submission time
//   - TotalPrice is computed server-side from the snapshot and never trusted
//     from the client
//   - The status history is monotonically non-decreasing along the transition
//     table, with cancelled as the only escape
//   - A delivery agent is attached exactly when the status is past pending
//     and not cancelled
type Order struct {
	id              kernel.UUID
	customerID      string
	items           []Item
	totalPrice      float64
	deliveryAddress string
	paymentMethod   PaymentMethod
	location        *kernel.GeoPoint
	status          Status
	createdAt       time.Time
	deliveryAgentID *string

	isConstructed bool
}

// NewOrder creates a pending order from a cart snapshot. The total price is
// derived from the items here; any client-side total is advisory only.
// Location is optional and nil when the customer shared no coordinates.
func NewOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	deliveryAddress string,
	paymentMethod PaymentMethod,
	location *kernel.GeoPoint,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		location:      location,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, trusting the stored
// total and status after validating them.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	totalPrice float64,
	deliveryAddress string,
	paymentMethod PaymentMethod,
	location *kernel.GeoPoint,
	status Status,
	createdAt time.Time,
	deliveryAgentID *string,
) (*Order, error) {
	o, err := NewOrder(id, customerID, items, deliveryAddress, paymentMethod, location, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.totalPrice = totalPrice
	o.status = status
	o.deliveryAgentID = deliveryAgentID
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the immutable item snapshot.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the server-computed order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// DeliveryAddress returns where the order is delivered.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PaymentMethod returns the recorded payment choice.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Location returns the optional delivery coordinates, nil when absent.
func (o *Order) Location() *kernel.GeoPoint {
	return o.location
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the submission time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryAgent returns the assigned agent's id, nil while pending or after
// a cancellation that happened before assignment.
func (o *Order) DeliveryAgent() *string {
	return o.deliveryAgentID
}

// Assign binds a delivery agent and moves the order to assigned. Legal only
// while the order is pending; a second assignment attempt fails with an
// InvalidTransitionError and mutates nothing.
func (o *Order) Assign(agentID string) error {
	if agentID == "" {
		return errs.NewValueIsRequiredError("agentID")
	}

	next, err := o.status.TransitionTo(StatusAssigned)
	if err != nil {
		return err
	}

	o.status = next
	o.deliveryAgentID = &agentID
	return nil
}

// Cancel performs an administrative cancellation. Legal from pending or
// assigned only; the agent keeps any already-picked-up order moving.
func (o *Order) Cancel() error {
	next, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// ApplyTaskStatus mirrors a delivery task's status onto the order. The order's
// status field is a read-through of the task once one exists, but the move
// still has to be legal in the transition table.
func (o *Order) ApplyTaskStatus(status Status) error {
	if o.status == status {
		return nil
	}

	next, err := o.status.TransitionTo(status)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)

	var total float64
	for _, item := range o.items {
		total += item.Amount()
	}
	o.totalPrice = total
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}
