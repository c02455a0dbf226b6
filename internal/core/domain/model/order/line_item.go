package order

import (
	"fmt"

	"grubdash/internal/pkg/errs"
)

// DishSnapshot is the copy of dish details stored with a line item. Every field is
// optional; the order keeps whatever the client sent.
type DishSnapshot struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Price       int
}

// LineItem is one entry of an order: a dish snapshot and the ordered quantity.
type LineItem struct {
	dish     DishSnapshot
	quantity int
}

// NewLineItem validates that quantity is greater than 0.
func NewLineItem(dish DishSnapshot, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return LineItem{dish: dish, quantity: quantity}, nil
}

// Dish returns the dish snapshot.
func (l LineItem) Dish() DishSnapshot {
	return l.dish
}

// Quantity returns the ordered quantity.
func (l LineItem) Quantity() int {
	return l.quantity
}
