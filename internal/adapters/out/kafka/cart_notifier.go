package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"grocery/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// cartChangedEvent carries the recomputed badge count after a cart mutation.
type cartChangedEvent struct {
	CustomerID string `json:"customer_id"`
	ItemCount  int    `json:"item_count"`
	OccurredAt string `json:"occurred_at"`
}

// CartBadgePublisher implements CartChangeNotifier over Kafka, keyed by
// customer id. Like the status publisher it is best-effort: a failed badge
// update is logged and dropped, the next cart read corrects the display.
type CartBadgePublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
	now    func() time.Time
}

// NewCartBadgePublisher creates a notifier for the given brokers and topic.
func NewCartBadgePublisher(logger *slog.Logger, topic string, brokers ...string) (*CartBadgePublisher, error) {
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

	return &CartBadgePublisher{
		writer: writer,
		logger: logger,
		now:    time.Now,
	}, nil
}

// CartChanged publishes the new item count for a customer's cart.
func (p *CartBadgePublisher) CartChanged(ctx context.Context, customerID string, itemCount int) {
	event := cartChangedEvent{
		CustomerID: customerID,
		ItemCount:  itemCount,
		OccurredAt: p.now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal cart changed event failed",
			"customerId", customerID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(customerID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("cart_changed")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish cart changed event failed",
			"customerId", customerID, "error", err)
	}
}

// Close flushes pending messages and releases the writer.
func (p *CartBadgePublisher) Close() error {
	return p.writer.Close()
}
