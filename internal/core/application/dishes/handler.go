// Package dishes implements the dishes resource: list, create, read and update
// pipelines over the dish store. Dishes cannot be deleted.
package dishes

import (
	"context"
	"fmt"
	"sync"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"
)

// Handler runs the dish pipelines. Mutations hold the write lock from lookup to
// store update, so no two of them interleave.
type Handler struct {
	repo ports.DishRepository
	ids  kernel.IDGenerator
	mu   sync.RWMutex
}

// NewHandler creates a dish handler over repo, naming new dishes with ids.
func NewHandler(repo ports.DishRepository, ids kernel.IDGenerator) *Handler {
	return &Handler{repo: repo, ids: ids}
}

// List returns every dish in store order.
func (h *Handler) List(ctx context.Context) ([]*dish.Dish, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.repo.List(ctx)
}

// Create validates the body and appends a new dish. An "id" in the body is
// ignored.
func (h *Handler) Create(ctx context.Context, req pipeline.Request) (*dish.Dish, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return pipeline.Run(ctx, req, detailStages(), h.create)
}

// Read returns the dish named by the route id.
func (h *Handler) Read(ctx context.Context, req pipeline.Request) (*dish.Dish, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return pipeline.Run(ctx, req, []pipeline.Stage[*dish.Dish]{h.exists()}, found)
}

// Update validates the body and overwrites the mutable fields of the dish named
// by the route id.
func (h *Handler) Update(ctx context.Context, req pipeline.Request) (*dish.Dish, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	stages := []pipeline.Stage[*dish.Dish]{h.exists()}
	stages = append(stages, detailStages()...)
	stages = append(stages, IDMatchesRoute())

	return pipeline.Run(ctx, req, stages, h.update)
}

// Delete always fails with 405: dishes are never removed.
func (h *Handler) Delete(_ context.Context, _ pipeline.Request) error {
	return pipeline.MethodNotAllowed(
		"Deleting dishes is not allowed",
		errs.NewOperationIsNotAllowedError("delete dish"),
	)
}

func (h *Handler) exists() pipeline.Stage[*dish.Dish] {
	return pipeline.Exists(h.repo.Get, func(id string) string {
		return fmt.Sprintf("Dish id not found %s", id)
	})
}

func (h *Handler) create(ctx context.Context, scope *pipeline.Scope[*dish.Dish]) (*dish.Dish, error) {
	in, err := bindDetails(scope.Body)
	if err != nil {
		return nil, err
	}

	d, err := dish.NewDish(h.ids.NextID(), in.name, in.description, in.price, in.imageURL)
	if err != nil {
		return nil, err
	}
	if err = h.repo.Add(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (h *Handler) update(ctx context.Context, scope *pipeline.Scope[*dish.Dish]) (*dish.Dish, error) {
	in, err := bindDetails(scope.Body)
	if err != nil {
		return nil, err
	}

	d := scope.Found
	if err = d.Update(in.name, in.description, in.price, in.imageURL); err != nil {
		return nil, err
	}
	if err = h.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func found(_ context.Context, scope *pipeline.Scope[*dish.Dish]) (*dish.Dish, error) {
	return scope.Found, nil
}
