package queries

import (
	"errors"
	"time"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrGetAgentTasksQueryIsNotConstructed = errors.New(
	"GetAgentTasksQuery must be created via NewGetAgentTasksQuery constructor",
)

// GetAgentTasksQuery retrieves a delivery agent's task list, active tasks
// before finished ones. This is the read the agent's dashboard polls.
type GetAgentTasksQuery struct { //nolint:recvcheck //using for validation
	agentID string

	guard guard.ConstructorGuard
}

// NewGetAgentTasksQuery creates a query for one agent's tasks.
func NewGetAgentTasksQuery(agentID string) (GetAgentTasksQuery, error) {
	if agentID == "" {
		return GetAgentTasksQuery{}, errs.NewValueIsRequiredError("agentID")
	}

	return GetAgentTasksQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentTasksQueryIsNotConstructed)
}

// AgentID returns whose tasks to list.
func (q GetAgentTasksQuery) AgentID() string {
	return q.agentID
}

// GetAgentTasksQueryResponse is one task row on the agent's dashboard.
// Payment method matters to the agent because cash orders are collected at
// the door.
type GetAgentTasksQueryResponse struct {
	TaskID          string    `json:"task_id"`
	OrderID         string    `json:"order_id"`
	Status          string    `json:"task_status"`
	CustomerID      string    `json:"customer_id"`
	DeliveryAddress string    `json:"delivery_address"`
	TotalPrice      float64   `json:"total_price"`
	PaymentMethod   string    `json:"payment_method"`
	CreatedAt       time.Time `json:"created_at"`
}
