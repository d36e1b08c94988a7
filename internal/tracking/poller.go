// Package tracking polls an order's read model on a fixed cadence so a
// caller can follow a delivery without a push channel. Polling is the
// canonical propagation path; event streams are only a hint.
package tracking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
)

// DefaultInterval is the polling cadence used when none is configured.
const DefaultInterval = 30 * time.Second

// OrderFetcher retrieves the current order snapshot.
type OrderFetcher interface {
	Fetch(ctx context.Context, orderID kernel.UUID) (queries.GetOrderQueryResponse, error)
}

// Poller creates tracking subscriptions. One Poller serves any number of
// concurrent subscriptions; each subscription owns its own goroutine and
// ticker.
type Poller struct {
	fetcher  OrderFetcher
	interval time.Duration
	logger   *slog.Logger
}

// NewPoller creates a poller. A zero interval falls back to DefaultInterval.
func NewPoller(logger *slog.Logger, fetcher OrderFetcher, interval time.Duration) (*Poller, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if fetcher == nil {
		return nil, errs.NewValueIsRequiredError("fetcher")
	}
	if interval < 0 {
		return nil, errs.NewValueIsInvalidError("interval")
	}
	if interval == 0 {
		interval = DefaultInterval
	}

	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		logger:   logger,
	}, nil
}

// Watch starts polling one order. The first fetch happens immediately, not
// one interval in. The subscription ends itself once the order reaches a
// terminal status; the caller ends it earlier through Stop or by cancelling
// the context. Either way the goroutine and ticker are torn down and the
// updates channel is closed.
func (p *Poller) Watch(ctx context.Context, orderID kernel.UUID) (*Subscription, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	sub := &Subscription{
		updates: make(chan queries.GetOrderQueryResponse),
		stop:    make(chan struct{}),
	}

	go p.run(ctx, orderID, sub)

	return sub, nil
}

func (p *Poller) run(ctx context.Context, orderID kernel.UUID, sub *Subscription) {
	defer close(sub.updates)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	if p.poll(ctx, orderID, sub) {
		return
	}

	for {
		select {
		case <-ticker.C:
			if p.poll(ctx, orderID, sub) {
				return
			}
		case <-ctx.Done():
			return
		case <-sub.stop:
			return
		}
	}
}

// poll performs one fetch and reports whether the subscription should end.
// A failed fetch is logged and retried on the next tick.
func (p *Poller) poll(ctx context.Context, orderID kernel.UUID, sub *Subscription) bool {
	snapshot, err := p.fetcher.Fetch(ctx, orderID)
	if err != nil {
		p.logger.Error("tracking fetch failed",
			"orderId", orderID.String(), "error", err)
		return false
	}

	select {
	case sub.updates <- snapshot:
	case <-ctx.Done():
		return true
	case <-sub.stop:
		return true
	}

	return order.Status(snapshot.Status).IsTerminal()
}

// Subscription is one live tracking feed. Updates stop and the channel closes
// when the order reaches a terminal status, the watch context is cancelled,
// or Stop is called.
type Subscription struct {
	updates chan queries.GetOrderQueryResponse
	stop    chan struct{}

	stopOnce sync.Once
}

// Updates returns the snapshot feed. Every successful fetch is delivered,
// including ones where nothing changed.
func (s *Subscription) Updates() <-chan queries.GetOrderQueryResponse {
	return s.updates
}

// Stop tears the subscription down. Safe to call more than once and from any
// goroutine.
func (s *Subscription) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}
