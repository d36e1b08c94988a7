package order

import (
	"grocery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order and of its delivery task.
// It implements a table-driven state machine so transition legality is checked
// in one place instead of being re-derived per call site.
//
// State transitions:
//
//	pending ──> assigned ──> picked_up ──> on_the_way ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// The string values are the wire and storage representation.
type Status string

const (
	// StatusPending is the initial status of a freshly submitted order,
	// waiting for the administrator to assign a delivery agent.
	StatusPending Status = "pending"

	// StatusAssigned indicates a delivery agent has been bound to the order.
	StatusAssigned Status = "assigned"

	// StatusPickedUp indicates the agent confirmed picking the items up.
	StatusPickedUp Status = "picked_up"

	// StatusOnTheWay indicates the agent confirmed departure to the customer.
	StatusOnTheWay Status = "on_the_way"

	// StatusDelivered is the successful terminal state.
	StatusDelivered Status = "delivered"

	// StatusCancelled is the administrative terminal state, reachable only
	// before the agent picks the order up.
	StatusCancelled Status = "cancelled"
)

// transitions is the single source of truth for status legality. Both request
// validation and the agent-facing advance affordance consult it.
var transitions = map[Status][]Status{
	StatusPending:   {StatusAssigned, StatusCancelled},
	StatusAssigned:  {StatusPickedUp, StatusCancelled},
	StatusPickedUp:  {StatusOnTheWay},
	StatusOnTheWay:  {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// forward is the unique next step along the fulfillment path. Delivery agents
// only ever see this one affordance, never an arbitrary target.
var forward = map[Status]Status{
	StatusPending:  StatusAssigned,
	StatusAssigned: StatusPickedUp,
	StatusPickedUp: StatusOnTheWay,
	StatusOnTheWay: StatusDelivered,
}

// Validate checks the status is one of the enumerated values.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidError("status " + string(s))
	}
	return nil
}

// String returns the wire representation.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is legal from s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the table allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the move is legal, or an InvalidTransitionError
// otherwise. It has no side effects.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(next) {
		return "", errs.NewInvalidTransitionError(string(s), string(next))
	}
	return next, nil
}

// Next returns the unique forward step from s along the fulfillment path.
// The second return is false for terminal states, which have no next step.
// Next is a pure function with no side effects.
func (s Status) Next() (Status, bool) {
	next, ok := forward[s]
	return next, ok
}
