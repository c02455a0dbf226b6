// Package seed loads the initial dish and order collections from a JSON file of
// the form {"dishes": [...], "orders": [...]}. Records go through the domain
// constructors, so an invalid seed file stops startup instead of populating the
// store with bad data. Records whose id is already stored are left untouched, so
// a persistent store can be seeded on every start.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"
)

// File is the layout of a seed file.
type File struct {
	Dishes []Dish  `json:"dishes"`
	Orders []Order `json:"orders"`
}

// Dish is a seeded dish record.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

// Order is a seeded order record.
type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       string      `json:"status"`
	Dishes       []OrderDish `json:"dishes"`
}

// OrderDish is a seeded line item.
type OrderDish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
}

// Result reports how many records were stored and how many were skipped because
// their id already existed.
type Result struct {
	Dishes  int
	Orders  int
	Skipped int
}

// LoadFile reads the seed file at path and adds its records to the stores.
func LoadFile(ctx context.Context, path string, dishes ports.DishRepository, orders ports.OrderRepository) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("seed: read %s: %w", path, err)
	}

	var f File
	if err = json.Unmarshal(data, &f); err != nil {
		return Result{}, fmt.Errorf("seed: decode %s: %w", path, err)
	}
	return Load(ctx, f, dishes, orders)
}

// Load adds the records of f to the stores in file order, skipping ids that are
// already stored. It stops at the first invalid record.
func Load(ctx context.Context, f File, dishes ports.DishRepository, orders ports.OrderRepository) (Result, error) {
	var res Result
	for i, in := range f.Dishes {
		d, err := dish.NewDish(in.ID, in.Name, in.Description, in.Price, in.ImageURL)
		if err != nil {
			return res, fmt.Errorf("seed: dishes[%d]: %w", i, err)
		}
		stored, err := isStored(ctx, dishes.Get, in.ID)
		if err != nil {
			return res, fmt.Errorf("seed: dishes[%d]: %w", i, err)
		}
		if stored {
			res.Skipped++
			continue
		}
		if err = dishes.Add(ctx, d); err != nil {
			return res, fmt.Errorf("seed: dishes[%d]: %w", i, err)
		}
		res.Dishes++
	}

	for i, in := range f.Orders {
		o, err := in.toDomain()
		if err != nil {
			return res, fmt.Errorf("seed: orders[%d]: %w", i, err)
		}
		stored, err := isStored(ctx, orders.Get, in.ID)
		if err != nil {
			return res, fmt.Errorf("seed: orders[%d]: %w", i, err)
		}
		if stored {
			res.Skipped++
			continue
		}
		if err = orders.Add(ctx, o); err != nil {
			return res, fmt.Errorf("seed: orders[%d]: %w", i, err)
		}
		res.Orders++
	}
	return res, nil
}

func isStored[T any](ctx context.Context, get func(context.Context, string) (T, error), id string) (bool, error) {
	_, err := get(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (in Order) toDomain() (*order.Order, error) {
	items := make([]order.LineItem, 0, len(in.Dishes))
	for _, d := range in.Dishes {
		item, err := order.NewLineItem(order.DishSnapshot{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Price:       d.Price,
		}, d.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return order.NewOrder(in.ID, in.DeliverTo, in.MobileNumber, order.Status(in.Status), items)
}
