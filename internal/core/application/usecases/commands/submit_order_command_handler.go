package commands

import (
	"context"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

// ErrCartIsEmpty rejects submission when the stored cart has no lines. It is
// part of the validation family so transports map it like any other missing
// input.
var ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")

// geoLocateTimeout bounds how long submission waits for address coordinates.
// Past it the order is created without a location.
const geoLocateTimeout = 10 * time.Second

// SubmitOrderCommandHandler handles the business logic for order submission.
// Snapshots the stored cart into a pending order with a server-computed total,
// then clears the cart. The cart survives untouched when anything before the
// commit fails.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cartStore  ports.CartStore
	notifier   ports.CartChangeNotifier
	locator    ports.GeoLocator
	publisher  ports.OrderEventPublisher
	now        func() time.Time
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	cartStore ports.CartStore,
	notifier ports.CartChangeNotifier,
	locator ports.GeoLocator,
	publisher ports.OrderEventPublisher,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		cartStore:  cartStore,
		notifier:   notifier,
		locator:    locator,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle processes the order submission command.
// Reads the cart, locks its lines and prices into an order snapshot, persists
// the order in pending status, and only then clears the cart. Coordinates the
// client shared at checkout are used as-is; otherwise they are acquired
// best-effort within a bounded wait.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.cartStore.Load(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if aggregate.IsEmpty() {
		return ErrCartIsEmpty
	}

	items := make([]order.Item, 0, len(aggregate.Snapshot()))
	for _, line := range aggregate.Snapshot() {
		item, err := order.NewItem(
			line.ProductID(), line.Name(), line.UnitPrice(), line.ImageRef(), line.Quantity())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	location := cmd.Location()
	if location == nil {
		location = h.locate(ctx, cmd.DeliveryAddress())
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		items,
		cmd.DeliveryAddress(),
		cmd.PaymentMethod(),
		location,
		h.now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The order is durable from here on. Cart cleanup failing leaves a stale
	// cart, never a lost order.
	aggregate.Clear()
	if err = h.cartStore.Clear(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	h.notifier.CartChanged(ctx, cmd.CustomerID(), 0)
	h.publisher.OrderStatusChanged(ctx, cmd.OrderID().String(), order.StatusPending)
	return nil
}

func (h SubmitOrderCommandHandler) locate(ctx context.Context, address string) *kernel.GeoPoint {
	locateCtx, cancel := context.WithTimeout(ctx, geoLocateTimeout)
	defer cancel()

	point, err := h.locator.Locate(locateCtx, address)
	if err != nil {
		return nil
	}
	return &point
}
