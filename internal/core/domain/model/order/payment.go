package order

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// PaymentMethod is the payment choice recorded on an order. Settlement is out
// of scope; the value is stored for display and delivery handling only.
type PaymentMethod string

const (
	// PaymentCashOnDelivery is paid in cash when the order arrives.
	PaymentCashOnDelivery PaymentMethod = "cod"

	// PaymentOnline is paid through an online channel before delivery.
	PaymentOnline PaymentMethod = "online"
)

// ParsePaymentMethod converts a wire value into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCashOnDelivery, PaymentOnline:
		return PaymentMethod(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a known payment method", s))
	}
}

// Validate checks the method is one of the enumerated values.
func (m PaymentMethod) Validate() error {
	_, err := ParsePaymentMethod(string(m))
	return err
}

// String returns the wire representation.
func (m PaymentMethod) String() string {
	return string(m)
}
