package order

import (
	"errors"
	"slices"

	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a customer order and the aggregate root of this package.
//
// Order follows these invariants:
//   - id, deliverTo and mobileNumber are non-empty
//   - status belongs to the status set
//   - items holds at least one line item, each with a positive quantity
//   - a delivered order never changes
type Order struct {
	id           string
	deliverTo    string
	mobileNumber string
	status       Status
	items        []LineItem

	guard guard.ConstructorGuard
}

// NewOrder creates an order. An empty status defaults to Pending; any other value
// must belong to the status set.
//
// Example:
//
//	item, _ := order.NewLineItem(order.DishSnapshot{ID: "d1", Name: "Taco"}, 2)
//	o, err := order.NewOrder(ids.NextID(), "308 Negra Arroyo Lane", "(505) 143-3369", "", []order.LineItem{item})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status()) // pending
func NewOrder(id, deliverTo, mobileNumber string, status Status, items []LineItem) (*Order, error) {
	if status == "" {
		status = Pending
	}

	o := &Order{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		o.setID(id),
		o.setDetails(deliverTo, mobileNumber, status, items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. Unlike NewOrder it requires
// an explicit status.
func RestoreOrder(id, deliverTo, mobileNumber string, status Status, items []LineItem) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return NewOrder(id, deliverTo, mobileNumber, status, items)
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// DeliverTo returns the delivery address.
func (o *Order) DeliverTo() string {
	return o.deliverTo
}

// MobileNumber returns the customer contact number.
func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the line items in order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Replace overwrites delivery details, status and line items in one step.
// A delivered order rejects every replacement, whatever the new values are.
func (o *Order) Replace(deliverTo, mobileNumber string, status Status, items []LineItem) error {
	next, err := o.status.TransitionTo(status)
	if err != nil {
		return err
	}

	candidate := *o
	if err = candidate.setDetails(deliverTo, mobileNumber, next, items); err != nil {
		return err
	}

	*o = candidate
	return nil
}

// ValidateDelete reports whether the order may be removed in its current status.
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	c.items = slices.Clone(o.items)
	return &c
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(deliverTo, mobileNumber string, status Status, items []LineItem) error {
	var errList []error
	if deliverTo == "" {
		errList = append(errList, errs.NewValueIsRequiredError("deliverTo"))
	}
	if mobileNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("mobileNumber"))
	}
	if err := status.Validate(); err != nil {
		errList = append(errList, err)
	}
	if len(items) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("dishes"))
	}
	for _, item := range items {
		if item.quantity <= 0 {
			errList = append(errList, errs.NewValueIsInvalidError("quantity"))
			break
		}
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	o.deliverTo = deliverTo
	o.mobileNumber = mobileNumber
	o.status = status
	o.items = slices.Clone(items)
	return nil
}
