package memory

import (
	"context"
	"fmt"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

// OrderRepository is the in-memory ports.OrderRepository.
type OrderRepository struct {
	orders Collection[*order.Order]
}

// NewOrderRepository returns an empty order store.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) List(_ context.Context) ([]*order.Order, error) {
	return r.orders.All(), nil
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.orders.Append(aggregate) {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("order %s already exists", aggregate.ID()))
	}
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	o, ok := r.orders.Find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.orders.Replace(aggregate) {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	return nil
}

func (r *OrderRepository) Remove(_ context.Context, id string) error {
	if !r.orders.Remove(id) {
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}

// Len returns the number of stored orders.
func (r *OrderRepository) Len() int {
	return r.orders.Len()
}
