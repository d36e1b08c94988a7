package commands

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

// CancelOrderCommandHandler handles administrative cancellation.
// Cancels the order and, when an agent already holds it, the attached delivery
// task in the same transaction. Orders past pickup cannot be cancelled.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Returns ObjectNotFoundError for an unknown order and InvalidTransitionError
// when the order is already picked up, delivered, or cancelled.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	orderRepo := uow.OrderRepository()

	// Task row first, order row second, matching the lock order of the
	// advance path. A pending order has no task yet; that lookup miss is not
	// an error.
	deliveryTask, taskErr := taskRepo.GetByOrder(ctx, cmd.OrderID())
	if taskErr != nil && !errors.Is(taskErr, errs.ErrObjectNotFound) {
		return taskErr
	}

	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	if taskErr == nil {
		if err = deliveryTask.Cancel(); err != nil {
			return err
		}
		if err = taskRepo.Update(ctx, deliveryTask); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.OrderStatusChanged(ctx, cmd.OrderID().String(), order.StatusCancelled)
	return nil
}
