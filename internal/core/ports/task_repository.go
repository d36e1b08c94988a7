package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for delivery tasks.
type TaskRepository interface {
	// Add persists the task created when an order is assigned.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists a task's status change.
	Update(ctx context.Context, aggregate *task.Task) error

	// Get retrieves a task by its unique identifier.
	// Returns ObjectNotFoundError when no such task exists.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetByOrder retrieves the task attached to an order.
	// Returns ObjectNotFoundError when the order has no task yet.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*task.Task, error)

	// GetByAgent retrieves all tasks bound to a delivery agent,
	// active ones first.
	GetByAgent(ctx context.Context, agentID string) ([]*task.Task, error)
}
