package kafka

import (
	"context"

	"grocery/internal/core/domain/model/order"
)

// DisabledOrderStatusPublisher drops status change events. It is wired in
// when no broker is configured; clients still observe every change through
// polling reads, the event stream is only an optimization.
type DisabledOrderStatusPublisher struct{}

// OrderStatusChanged discards the event.
func (DisabledOrderStatusPublisher) OrderStatusChanged(context.Context, string, order.Status) {}

// DisabledCartBadgePublisher drops cart change notifications when no broker
// is configured.
type DisabledCartBadgePublisher struct{}

// CartChanged discards the notification.
func (DisabledCartBadgePublisher) CartChanged(context.Context, string, int) {}
