package ports

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// OrderRepository is the store backing the orders resource. Implementations keep
// records in insertion order.
type OrderRepository interface {
	// List returns every order in store order.
	List(ctx context.Context) ([]*order.Order, error)

	// Add appends a new order. The order must be valid and its id unused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given id or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id string) (*order.Order, error)

	// Update stores the new state of an existing order, line items included.
	Update(ctx context.Context, aggregate *order.Order) error

	// Remove deletes the order with the given id.
	// Returns an *errs.ObjectNotFoundError when nothing matched.
	Remove(ctx context.Context, id string) error
}
