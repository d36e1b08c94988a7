// Package agentdir exposes the delivery agent roster stored in Postgres as
// the AgentDirectory port. Agents are reference data: the order workflow
// reads them but never creates or mutates them.
package agentdir

import (
	"grocery/internal/core/ports"
)

// AgentDTO represents the database structure for delivery agents.
type AgentDTO struct {
	ID    string `gorm:"primaryKey"`
	Name  string
	Phone string
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

func toAgent(dto AgentDTO) ports.DeliveryAgent {
	return ports.DeliveryAgent{
		ID:    dto.ID,
		Name:  dto.Name,
		Phone: dto.Phone,
	}
}
