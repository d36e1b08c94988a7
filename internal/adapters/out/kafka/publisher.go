// Package kafka publishes order status change events for downstream
// consumers. Publishing is best-effort: a broker outage is logged and
// swallowed because actors learn about status changes through polling reads,
// not through the event stream.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// statusChangedEvent is the wire shape of one status change notification.
type statusChangedEvent struct {
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

// OrderStatusPublisher writes order status changes to a Kafka topic, keyed by
// order id so changes to one order stay in order.
type OrderStatusPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
	now    func() time.Time
}

// NewOrderStatusPublisher creates a publisher for the given brokers and topic.
// Close must be called on shutdown to flush the writer.
func NewOrderStatusPublisher(logger *slog.Logger, topic string, brokers ...string) (*OrderStatusPublisher, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	return &OrderStatusPublisher{
		writer: writer,
		logger: logger,
		now:    time.Now,
	}, nil
}

// OrderStatusChanged publishes one status change. Failures are logged, never
// returned.
func (p *OrderStatusPublisher) OrderStatusChanged(ctx context.Context, orderID string, status order.Status) {
	event := statusChangedEvent{
		OrderID:    orderID,
		Status:     status.String(),
		OccurredAt: p.now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal order status event failed",
			"orderId", orderID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(orderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order_status_changed")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish order status event failed",
			"orderId", orderID, "status", status.String(), "error", err)
	}
}

// Close flushes pending messages and releases the writer.
func (p *OrderStatusPublisher) Close() error {
	return p.writer.Close()
}
