package commands

import (
	"context"

	"grocery/internal/core/ports"
)

// AdvanceTaskCommandHandler moves a delivery task one step along the
// fulfillment path and mirrors the new status onto the parent order, both in
// one transaction. Two concurrent advances of the same task serialize on the
// row; the second one re-reads the moved status and fails the transition.
type AdvanceTaskCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAdvanceTaskCommandHandler creates a handler for task advancement.
func NewAdvanceTaskCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
) AdvanceTaskCommandHandler {
	return AdvanceTaskCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the advancement command.
// Returns ObjectNotFoundError for an unknown task and InvalidTransitionError
// when the task is already delivered or cancelled.
func (h AdvanceTaskCommandHandler) Handle(ctx context.Context, cmd AdvanceTaskCommand) error {
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

	deliveryTask, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	nextStatus, err := deliveryTask.Advance()
	if err != nil {
		return err
	}

	trackedOrder, err := orderRepo.Get(ctx, deliveryTask.OrderID())
	if err != nil {
		return err
	}

	if err = trackedOrder.ApplyTaskStatus(nextStatus); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, deliveryTask); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.OrderStatusChanged(ctx, deliveryTask.OrderID().String(), nextStatus)
	return nil
}
