package ports

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// OrderEventPublisher forwards order change events to interested systems.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
