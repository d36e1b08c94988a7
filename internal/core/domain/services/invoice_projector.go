package services

import (
	"fmt"
	"math"
	"strings"

	"grocery/internal/core/domain/model/order"
)

// totalTolerance absorbs float accumulation noise when comparing the
// recomputed grand total against the stored order total.
const totalTolerance = 0.005

// InvoiceLine is one item row of a projected invoice.
type InvoiceLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Amount    float64 `json:"amount"`
}

// Invoice is the printable projection of one order. It is data only; the
// projector never re-fetches or mutates order state.
//
// TotalMismatch is set when the grand total recomputed from the lines
// diverges from the order's stored total. Divergence indicates a data
// integrity issue upstream, so the document flags it instead of silently
// correcting either value.
type Invoice struct {
	OrderID         string        `json:"order_id"`
	CustomerID      string        `json:"customer_id"`
	CreatedAt       string        `json:"created_at"`
	DeliveryAddress string        `json:"delivery_address"`
	PaymentMethod   string        `json:"payment_method"`
	Status          string        `json:"status"`
	Lines           []InvoiceLine `json:"lines"`
	GrandTotal      float64       `json:"grand_total"`
	StoredTotal     float64       `json:"stored_total"`
	TotalMismatch   bool          `json:"total_mismatch"`
}

// InvoiceProjector maps a completed (or in-flight) order snapshot to an
// invoice document. Projection is deterministic: identical input produces
// byte-identical rendered output.
type InvoiceProjector struct{}

// NewInvoiceProjector creates a new InvoiceProjector instance.
func NewInvoiceProjector() InvoiceProjector {
	return InvoiceProjector{}
}

// Project builds the invoice for the given order snapshot.
// Per-line amount is unit price times quantity; the grand total is the sum of
// line amounts and is compared, never reconciled, against the stored total.
func (p InvoiceProjector) Project(o *order.Order) (Invoice, error) {
	if err := o.Validate(); err != nil {
		return Invoice{}, err
	}

	items := o.Items()
	lines := make([]InvoiceLine, 0, len(items))
	var grandTotal float64
	for _, item := range items {
		lines = append(lines, InvoiceLine{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
			Amount:    item.Amount(),
		})
		grandTotal += item.Amount()
	}

	return Invoice{
		OrderID:         o.ID().String(),
		CustomerID:      o.CustomerID(),
		CreatedAt:       o.CreatedAt().Format("2006-01-02 15:04:05 MST"),
		DeliveryAddress: o.DeliveryAddress(),
		PaymentMethod:   o.PaymentMethod().String(),
		Status:          o.Status().String(),
		Lines:           lines,
		GrandTotal:      grandTotal,
		StoredTotal:     o.TotalPrice(),
		TotalMismatch:   math.Abs(grandTotal-o.TotalPrice()) > totalTolerance,
	}, nil
}

// Render produces the plain-text printable form of the invoice.
// Rendering is pure string formatting over the invoice data, so two renders
// of the same projection are byte-identical.
func (inv Invoice) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "INVOICE\n")
	fmt.Fprintf(&b, "Order:    %s\n", inv.OrderID)
	fmt.Fprintf(&b, "Customer: %s\n", inv.CustomerID)
	fmt.Fprintf(&b, "Date:     %s\n", inv.CreatedAt)
	fmt.Fprintf(&b, "Address:  %s\n", inv.DeliveryAddress)
	fmt.Fprintf(&b, "Payment:  %s\n", inv.PaymentMethod)
	fmt.Fprintf(&b, "Status:   %s\n", inv.Status)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 52))

	for _, line := range inv.Lines {
		fmt.Fprintf(&b, "%-24s %8.2f x %3d %12.2f\n",
			line.Name, line.UnitPrice, line.Quantity, line.Amount)
	}

	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 52))
	fmt.Fprintf(&b, "%-37s %12.2f\n", "TOTAL", inv.GrandTotal)

	if inv.TotalMismatch {
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 52))
		fmt.Fprintf(&b, "WARNING: stored order total %.2f does not match the line sum\n", inv.StoredTotal)
	}

	return b.String()
}
