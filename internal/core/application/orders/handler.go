// Package orders implements the orders resource: list, create, read, update and
// delete pipelines over the order store, guarded by the order status state machine.
// Every stored change is announced through a ports.OrderEventPublisher.
package orders

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// Handler runs the order pipelines. Mutations hold the write lock from lookup to
// store update, so no two of them interleave. Events are published after the lock
// is released.
type Handler struct {
	repo   ports.OrderRepository
	ids    kernel.IDGenerator
	events ports.OrderEventPublisher
	logger *slog.Logger
	now    func() time.Time
	mu     sync.RWMutex
}

// Option customizes a Handler.
type Option func(*Handler)

// WithEvents sets the publisher notified after every stored change.
func WithEvents(events ports.OrderEventPublisher) Option {
	return func(h *Handler) {
		h.events = events
	}
}

// WithLogger sets the logger used for publication failures.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithClock sets the time source for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

// NewHandler creates an order handler over repo, naming new orders with ids.
// Without options events are discarded and failures are logged by slog.Default.
func NewHandler(repo ports.OrderRepository, ids kernel.IDGenerator, opts ...Option) *Handler {
	h := &Handler{
		repo:   repo,
		ids:    ids,
		events: DiscardEvents{},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With("component", "OrdersHandler")
	return h
}

// List returns every order in store order.
func (h *Handler) List(ctx context.Context) ([]*order.Order, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.repo.List(ctx)
}

// Create validates the body and appends a new order. An omitted status becomes
// pending; an "id" in the body is ignored.
func (h *Handler) Create(ctx context.Context, req pipeline.Request) (*order.Order, error) {
	stages := []pipeline.Stage[*order.Order]{ValidateOrder(), ValidateSuppliedStatus()}
	o, err := h.mutate(ctx, req, stages, h.create)
	if err != nil {
		return nil, err
	}

	h.publish(ctx, order.EventCreated, o)
	return o, nil
}

// Read returns the order named by the route id.
func (h *Handler) Read(ctx context.Context, req pipeline.Request) (*order.Order, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return pipeline.Run(ctx, req, []pipeline.Stage[*order.Order]{h.exists()}, found)
}

// Update replaces delivery details, status and line items of the order named by
// the route id.
func (h *Handler) Update(ctx context.Context, req pipeline.Request) (*order.Order, error) {
	stages := []pipeline.Stage[*order.Order]{
		h.exists(),
		ValidateOrder(),
		ValidateStatus(),
		ValidateOrderID(),
	}
	o, err := h.mutate(ctx, req, stages, h.update)
	if err != nil {
		return nil, err
	}

	h.publish(ctx, order.EventUpdated, o)
	return o, nil
}

// Delete removes the pending order named by the route id.
func (h *Handler) Delete(ctx context.Context, req pipeline.Request) error {
	stages := []pipeline.Stage[*order.Order]{h.exists(), CheckPendingStatus()}
	o, err := h.mutate(ctx, req, stages, h.remove)
	if err != nil {
		return err
	}

	h.publish(ctx, order.EventDeleted, o)
	return nil
}

// Backlog counts stored orders per status. Every status is present in the result,
// with zero when no order has it.
func (h *Handler) Backlog(ctx context.Context) (map[order.Status]int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	all, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int, len(order.Statuses()))
	for _, s := range order.Statuses() {
		counts[s] = 0
	}
	for _, o := range all {
		counts[o.Status()]++
	}
	return counts, nil
}

func (h *Handler) mutate(
	ctx context.Context,
	req pipeline.Request,
	stages []pipeline.Stage[*order.Order],
	terminal pipeline.Terminal[*order.Order, *order.Order],
) (*order.Order, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return pipeline.Run(ctx, req, stages, terminal)
}

func (h *Handler) exists() pipeline.Stage[*order.Order] {
	return pipeline.Exists(h.repo.Get, func(id string) string {
		return fmt.Sprintf("Order id not found: %s", id)
	})
}

func (h *Handler) create(ctx context.Context, scope *pipeline.Scope[*order.Order]) (*order.Order, error) {
	in, err := bindOrder(scope.Body)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(h.ids.NextID(), in.deliverTo, in.mobileNumber, in.status, in.items)
	if err != nil {
		return nil, err
	}
	if err = h.repo.Add(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (h *Handler) update(ctx context.Context, scope *pipeline.Scope[*order.Order]) (*order.Order, error) {
	in, err := bindOrder(scope.Body)
	if err != nil {
		return nil, err
	}

	o := scope.Found
	if err = o.Replace(in.deliverTo, in.mobileNumber, in.status, in.items); err != nil {
		return nil, err
	}
	if err = h.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (h *Handler) remove(ctx context.Context, scope *pipeline.Scope[*order.Order]) (*order.Order, error) {
	o := scope.Found
	if err := h.repo.Remove(ctx, o.ID()); err != nil {
		return nil, err
	}

	return o, nil
}

func (h *Handler) publish(ctx context.Context, t order.EventType, o *order.Order) {
	event := order.NewEvent(t, o, h.now())
	if err := h.events.Publish(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish order event",
			"type", string(event.Type),
			"order_id", event.OrderID,
			"error", err,
		)
	}
}

func found(_ context.Context, scope *pipeline.Scope[*order.Order]) (*order.Order, error) {
	return scope.Found, nil
}

// DiscardEvents is the publisher used when no broker is configured.
type DiscardEvents struct{}

func (DiscardEvents) Publish(context.Context, order.Event) error {
	return nil
}
