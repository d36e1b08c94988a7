package services_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceOrder(t *testing.T, storedTotal float64) *order.Order {
	t.Helper()
	milk, err := order.NewItem("p1", "Milk", 10, "/img/milk.png", 2)
	require.NoError(t, err)
	bread, err := order.NewItem("p2", "Bread", 25, "/img/bread.png", 1)
	require.NoError(t, err)

	created := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "customer-1", []order.Item{milk, bread},
		storedTotal, "12 Market Street", order.PaymentCashOnDelivery, nil,
		order.StatusDelivered, created, nil,
	)
	require.NoError(t, err)
	return o
}

func TestInvoiceProjector_Project(t *testing.T) {
	t.Run("line_amounts_and_grand_total", func(t *testing.T) {
		o := invoiceOrder(t, 45)

		inv, err := services.NewInvoiceProjector().Project(o)

		require.NoError(t, err)
		require.Len(t, inv.Lines, 2)
		assert.InDelta(t, 20.0, inv.Lines[0].Amount, 1e-9)
		assert.InDelta(t, 25.0, inv.Lines[1].Amount, 1e-9)
		assert.InDelta(t, 45.0, inv.GrandTotal, 1e-9)
		assert.False(t, inv.TotalMismatch)
	})

	t.Run("stored_total_divergence_is_flagged_not_corrected", func(t *testing.T) {
		o := invoiceOrder(t, 44)

		inv, err := services.NewInvoiceProjector().Project(o)

		require.NoError(t, err)
		assert.True(t, inv.TotalMismatch)
		assert.InDelta(t, 45.0, inv.GrandTotal, 1e-9)
		assert.InDelta(t, 44.0, inv.StoredTotal, 1e-9)
		assert.Contains(t, inv.Render(), "WARNING")
	})

	t.Run("unconstructed_order_rejected", func(t *testing.T) {
		var o order.Order
		_, err := services.NewInvoiceProjector().Project(&o)

		require.Error(t, err)
	})
}

func TestInvoiceProjector_Deterministic(t *testing.T) {
	o := invoiceOrder(t, 45)
	projector := services.NewInvoiceProjector()

	first, err := projector.Project(o)
	require.NoError(t, err)
	second, err := projector.Project(o)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Render(), second.Render())
}

func TestInvoice_Render(t *testing.T) {
	o := invoiceOrder(t, 45)

	inv, err := services.NewInvoiceProjector().Project(o)
	require.NoError(t, err)
	doc := inv.Render()

	assert.Contains(t, doc, "INVOICE")
	assert.Contains(t, doc, "Milk")
	assert.Contains(t, doc, "Bread")
	assert.Contains(t, doc, "12 Market Street")
	assert.Contains(t, doc, "45.00")
	assert.NotContains(t, doc, "WARNING")
}
