package ports

import (
	"context"
)

// DeliveryAgent is the read-only view of one agent in the directory.
// Agents are referenced by id, never owned, by the order workflow.
type DeliveryAgent struct {
	ID    string
	Name  string
	Phone string
}

// AgentDirectory is the external collaborator listing delivery agents.
type AgentDirectory interface {
	// Get retrieves one agent by id.
	// Returns ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id string) (DeliveryAgent, error)

	// GetAll retrieves every registered agent, for the admin
	// assignment picker.
	GetAll(ctx context.Context) ([]DeliveryAgent, error)
}
