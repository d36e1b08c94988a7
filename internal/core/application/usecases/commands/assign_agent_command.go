package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents an admin's request to hand a pending order to
// a delivery agent.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID string

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign an agent to an order.
func NewAssignAgentCommand(orderID kernel.UUID, agentID string) (AssignAgentCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		requireString("agentID", agentID),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return AssignAgentCommand{
		orderID: orderID,
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the delivery agent receiving the order.
func (c AssignAgentCommand) AgentID() string {
	return c.agentID
}
