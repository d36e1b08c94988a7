package commands

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/task"
	"grocery/internal/core/ports"
)

// AssignAgentCommandHandler orchestrates agent assignment.
// Verifies the agent exists, moves the order from pending to assigned, and
// creates the delivery task in the same transaction. When two admins race on
// one order the first commit wins and the loser fails the status transition.
type AssignAgentCommandHandler struct {
	uowFactory UoWFactory
	agents     ports.AgentDirectory
	publisher  ports.OrderEventPublisher
}

// NewAssignAgentCommandHandler creates a handler for assignment operations.
// Requires a UoWFactory because order and task must change together.
func NewAssignAgentCommandHandler(
	uowFactory UoWFactory,
	agents ports.AgentDirectory,
	publisher ports.OrderEventPublisher,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		agents:     agents,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
// Returns ObjectNotFoundError for an unknown order or agent, and
// InvalidTransitionError when the order is not pending anymore.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.agents.Get(ctx, cmd.AgentID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	taskRepo := uow.TaskRepository()

	assignedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = assignedOrder.Assign(cmd.AgentID()); err != nil {
		return err
	}

	deliveryTask, err := task.NewTask(kernel.NewUUID(), cmd.OrderID(), cmd.AgentID())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assignedOrder); err != nil {
		return err
	}

	if err = taskRepo.Add(ctx, deliveryTask); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.OrderStatusChanged(ctx, cmd.OrderID().String(), order.StatusAssigned)
	return nil
}
