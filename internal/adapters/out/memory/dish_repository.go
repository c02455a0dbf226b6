package memory

import (
	"context"
	"fmt"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/errs"
)

// DishRepository is the in-memory ports.DishRepository.
type DishRepository struct {
	dishes Collection[*dish.Dish]
}

// NewDishRepository returns an empty dish store.
func NewDishRepository() *DishRepository {
	return &DishRepository{}
}

func (r *DishRepository) List(_ context.Context) ([]*dish.Dish, error) {
	return r.dishes.All(), nil
}

func (r *DishRepository) Add(_ context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.dishes.Append(aggregate) {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("dish %s already exists", aggregate.ID()))
	}
	return nil
}

func (r *DishRepository) Get(_ context.Context, id string) (*dish.Dish, error) {
	d, ok := r.dishes.Find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("dish", id)
	}
	return d, nil
}

func (r *DishRepository) Update(_ context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.dishes.Replace(aggregate) {
		return errs.NewObjectNotFoundError("dish", aggregate.ID())
	}
	return nil
}

// Len returns the number of stored dishes.
func (r *DishRepository) Len() int {
	return r.dishes.Len()
}
