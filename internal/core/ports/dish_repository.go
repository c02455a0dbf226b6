// Package ports defines the contracts between the application layer and the
// infrastructure adapters: record stores and outbound event publication.
package ports

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

// DishRepository is the store backing the dishes resource. Implementations keep
// records in insertion order.
type DishRepository interface {
	// List returns every dish in store order.
	List(ctx context.Context) ([]*dish.Dish, error)

	// Add appends a new dish. The dish must be valid and its id unused.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Get returns the dish with the given id or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id string) (*dish.Dish, error)

	// Update stores the new state of an existing dish.
	Update(ctx context.Context, aggregate *dish.Dish) error
}
