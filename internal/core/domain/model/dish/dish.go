package dish

import (
	"errors"
	"fmt"

	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

// ErrDishIsNotConstructed is returned when a Dish was not created through NewDish.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish is a menu item. Its fields are private so every instance holds the
// invariants checked by NewDish and Update.
type Dish struct {
	id          string
	name        string
	description string
	price       int
	imageURL    string

	guard guard.ConstructorGuard
}

// NewDish creates a dish after validating every field. All violations are
// reported together, joined with errors.Join.
//
// Example:
//
//	d, err := dish.NewDish(ids.NextID(), "Taco", "Corn tortilla, carnitas", 5, "https://example.com/taco.png")
//	if err != nil {
//	    return err
//	}
func NewDish(id, name, description string, price int, imageURL string) (*Dish, error) {
	d := &Dish{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setDetails(name, description, price, imageURL),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the dish was built by NewDish.
func (d *Dish) Validate() error {
	if d == nil {
		return ErrDishIsNotConstructed
	}
	return d.guard.Validate(ErrDishIsNotConstructed)
}

// ID returns the dish identifier.
func (d *Dish) ID() string {
	return d.id
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the dish price in whole currency units.
func (d *Dish) Price() int {
	return d.price
}

// ImageURL returns the URL of the dish picture. The format is not checked.
func (d *Dish) ImageURL() string {
	return d.imageURL
}

// Update overwrites every mutable field. Either all fields change or, when any
// value is invalid, none do.
func (d *Dish) Update(name, description string, price int, imageURL string) error {
	next := *d
	if err := next.setDetails(name, description, price, imageURL); err != nil {
		return err
	}

	*d = next
	return nil
}

// Clone returns an independent copy of the dish.
func (d *Dish) Clone() *Dish {
	c := *d
	return &c
}

func (d *Dish) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

func (d *Dish) setDetails(name, description string, price int, imageURL string) error {
	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if description == "" {
		errList = append(errList, errs.NewValueIsRequiredError("description"))
	}
	if price <= 0 {
		errList = append(errList,
			errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price)))
	}
	if imageURL == "" {
		errList = append(errList, errs.NewValueIsRequiredError("image_url"))
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	d.name = name
	d.description = description
	d.price = price
	d.imageURL = imageURL
	return nil
}
