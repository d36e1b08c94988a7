// Package task provides the delivery task entity: the unit of work a delivery
// agent fulfills for one assigned order.
//
// A task is derived 1:1 from an order at assignment time. Its status is the
// authoritative forward cursor of the delivery; the parent order's status is a
// read-through of it. Agents only ever advance a task to the unique next
// status, never to an arbitrary target.
package task

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
)

// ErrTaskIsNotConstructed is returned when a Task instance was not created
// through NewTask or RestoreTask.
var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask constructor")

// Task binds an order to the delivery agent working it and tracks the
// delivery-facing status.
type Task struct {
	id            kernel.UUID
	orderID       kernel.UUID
	agentID       string
	status        order.Status
	isConstructed bool
}

// NewTask creates the task attached to an order at assignment time.
// A fresh task always starts in assigned status.
func NewTask(id, orderID kernel.UUID, agentID string) (*Task, error) {
	t := &Task{
		status:        order.StatusAssigned,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setAgentID(agentID),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTask reconstructs a task from persistence.
func RestoreTask(id, orderID kernel.UUID, agentID string, status order.Status) (*Task, error) {
	t, err := NewTask(id, orderID, agentID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	t.status = status
	return t, nil
}

// Validate ensures the Task instance was properly constructed.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// OrderID returns the parent order's identifier.
func (t *Task) OrderID() kernel.UUID {
	return t.orderID
}

// AgentID returns the delivery agent working the task.
func (t *Task) AgentID() string {
	return t.agentID
}

// Status returns the current delivery-facing status.
func (t *Task) Status() order.Status {
	return t.status
}

// Advance moves the task to the unique next status along the fulfillment
// path: assigned -> picked_up -> on_the_way -> delivered. Returns an
// InvalidTransitionError when no next step exists; the task is unchanged.
func (t *Task) Advance() (order.Status, error) {
	next, ok := t.status.Next()
	if !ok {
		return "", errs.NewInvalidTransitionError(string(t.status), "")
	}

	// Next and the transition table agree by construction, but the table
	// stays the single authority.
	advanced, err := t.status.TransitionTo(next)
	if err != nil {
		return "", err
	}

	t.status = advanced
	return advanced, nil
}

// Cancel marks the task cancelled when its order is administratively
// cancelled before pickup.
func (t *Task) Cancel() error {
	next, err := t.status.TransitionTo(order.StatusCancelled)
	if err != nil {
		return err
	}

	t.status = next
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Task) setAgentID(agentID string) error {
	if agentID == "" {
		return errs.NewValueIsRequiredError("agentID")
	}
	t.agentID = agentID
	return nil
}
