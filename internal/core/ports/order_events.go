package ports

import (
	"context"

	"grocery/internal/core/domain/model/order"
)

// OrderEventPublisher announces order status changes to downstream consumers
// after a successful commit. Publishing is best-effort: failures are logged
// by the adapter and never fail the originating operation, since status
// propagation to actors goes through polling reads.
type OrderEventPublisher interface {
	OrderStatusChanged(ctx context.Context, orderID string, status order.Status)
}
