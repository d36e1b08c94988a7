// Package taskrepo persists delivery tasks, the per-agent unit of work that
// mirrors an assigned order's fulfillment progress.
package taskrepo

import (
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting delivery tasks.
type TaskDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AgentID string    `gorm:"index"`
	Status  string
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "tasks"
}

func fromDomain(aggregate *task.Task) TaskDTO {
	return TaskDTO{
		ID:      aggregate.ID().Bytes(),
		OrderID: aggregate.OrderID().Bytes(),
		AgentID: aggregate.AgentID(),
		Status:  string(aggregate.Status()),
	}
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return task.RestoreTask(id, orderID, dto.AgentID, order.Status(dto.Status))
}
