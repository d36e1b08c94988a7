package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrAdvanceTaskCommandIsNotConstructed = errors.New(
	"AdvanceTaskCommand must be created via NewAdvanceTaskCommand constructor",
)

// AdvanceTaskCommand represents a delivery agent's request to move a task one
// step forward. The target status is never part of the request: the next step
// is always derived from the current one.
type AdvanceTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceTaskCommand creates a command to advance a delivery task.
func NewAdvanceTaskCommand(taskID kernel.UUID) (AdvanceTaskCommand, error) {
	if err := taskID.Validate(); err != nil {
		return AdvanceTaskCommand{}, err
	}

	return AdvanceTaskCommand{
		taskID: taskID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceTaskCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceTaskCommandIsNotConstructed)
}

// TaskID returns the task to advance.
func (c AdvanceTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}
