package order_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotItems(t *testing.T) []order.Item {
	t.Helper()
	first, err := order.NewItem("p1", "Milk", 10, "/img/milk.png", 2)
	require.NoError(t, err)
	second, err := order.NewItem("p2", "Bread", 25, "/img/bread.png", 1)
	require.NoError(t, err)
	return []order.Item{first, second}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"customer-1",
		snapshotItems(t),
		"12 Market Street",
		order.PaymentCashOnDelivery,
		nil,
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes_total_server_side", func(t *testing.T) {
		o := newPendingOrder(t)

		// 10*2 + 25*1
		assert.InDelta(t, 45.0, o.TotalPrice(), 1e-9)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.DeliveryAgent())
	})

	t.Run("empty_items_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "customer-1", nil,
			"12 Market Street", order.PaymentOnline, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing_address_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "customer-1", snapshotItems(t),
			"", order.PaymentOnline, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown_payment_method_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "customer-1", snapshotItems(t),
			"12 Market Street", order.PaymentMethod("crypto"), nil, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("optional_location", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(12.97, 77.59)
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), "customer-1", snapshotItems(t),
			"12 Market Street", order.PaymentOnline, &point, time.Now())

		require.NoError(t, err)
		require.NotNil(t, o.Location())
		assert.True(t, o.Location().IsEqual(point))
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("pending_order_gets_agent", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Assign("agent-7"))

		assert.Equal(t, order.StatusAssigned, o.Status())
		require.NotNil(t, o.DeliveryAgent())
		assert.Equal(t, "agent-7", *o.DeliveryAgent())
	})

	t.Run("second_assignment_fails_without_mutation", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign("agent-7"))

		err := o.Assign("agent-8")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusAssigned, o.Status())
		assert.Equal(t, "agent-7", *o.DeliveryAgent())
	})

	t.Run("empty_agent_id_rejected", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.Assign(""), errs.ErrValueIsRequired)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("from_pending", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("from_assigned", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign("agent-7"))

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("after_pickup_fails", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign("agent-7"))
		require.NoError(t, o.ApplyTaskStatus(order.StatusPickedUp))

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusPickedUp, o.Status())
	})
}

func TestOrder_ApplyTaskStatus(t *testing.T) {
	t.Run("mirrors_task_progress", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign("agent-7"))

		require.NoError(t, o.ApplyTaskStatus(order.StatusPickedUp))
		require.NoError(t, o.ApplyTaskStatus(order.StatusOnTheWay))
		require.NoError(t, o.ApplyTaskStatus(order.StatusDelivered))

		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("same_status_is_a_no_op", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign("agent-7"))

		require.NoError(t, o.ApplyTaskStatus(order.StatusAssigned))
		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("illegal_jump_rejected", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign("agent-7"))

		err := o.ApplyTaskStatus(order.StatusDelivered)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusAssigned, o.Status())
	})
}

func TestOrder_ItemsSnapshotIsImmutable(t *testing.T) {
	o := newPendingOrder(t)

	items := o.Items()
	replacement, err := order.NewItem("p9", "Eggs", 99, "", 9)
	require.NoError(t, err)
	items[0] = replacement

	assert.Equal(t, "p1", o.Items()[0].ProductID())
	assert.InDelta(t, 45.0, o.TotalPrice(), 1e-9)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("keeps_stored_total_and_status", func(t *testing.T) {
		agent := "agent-7"
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "customer-1", snapshotItems(t),
			44.0, // stored total diverging from the recomputed 45 stays as stored
			"12 Market Street", order.PaymentOnline, nil,
			order.StatusOnTheWay, time.Now(), &agent,
		)

		require.NoError(t, err)
		assert.InDelta(t, 44.0, o.TotalPrice(), 1e-9)
		assert.Equal(t, order.StatusOnTheWay, o.Status())
		assert.Equal(t, "agent-7", *o.DeliveryAgent())
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "customer-1", snapshotItems(t),
			45.0, "12 Market Street", order.PaymentOnline, nil,
			order.Status("shipped"), time.Now(), nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParsePaymentMethod(t *testing.T) {
	for _, s := range []string{"cod", "online"} {
		m, err := order.ParsePaymentMethod(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}

	_, err := order.ParsePaymentMethod("cheque")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
