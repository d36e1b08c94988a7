package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to turn a customer's cart into a
// pending order. The items themselves are not part of the command: the handler
// reads them from the stored cart so client-side tampering cannot change what
// gets priced.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(orderID, "cust-42", "12 Baker St", "cod", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
//	fmt.Printf("Order %s placed and awaiting agent assignment", orderID)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      string
	deliveryAddress string
	paymentMethod   order.PaymentMethod
	location        *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a customer's cart as an
// order. Validates the order id, requires customer id and address, and parses
// the payment method against the supported set. The location is optional:
// coordinates the client shared at checkout take precedence over geocoding
// the delivery address.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	customerID, deliveryAddress, paymentMethod string,
	location *kernel.GeoPoint,
) (SubmitOrderCommand, error) {
	payment, paymentErr := order.ParsePaymentMethod(paymentMethod)

	if err := errors.Join(
		orderID.Validate(),
		requireString("customerID", customerID),
		requireString("deliveryAddress", deliveryAddress),
		paymentErr,
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{
		orderID:         orderID,
		customerID:      customerID,
		deliveryAddress: deliveryAddress,
		paymentMethod:   payment,
		location:        location,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the submitting customer's identifier.
func (c SubmitOrderCommand) CustomerID() string {
	return c.customerID
}

// DeliveryAddress returns where the order should be delivered.
func (c SubmitOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PaymentMethod returns the parsed payment choice.
func (c SubmitOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Location returns the coordinates the client shared at checkout, or nil when
// the delivery address must be geocoded instead.
func (c SubmitOrderCommand) Location() *kernel.GeoPoint {
	return c.location
}
