package orders

import (
	"context"
	"fmt"
	"math"
	"strings"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

// ValidateOrder checks deliverTo, mobileNumber, the dishes array and every dish
// quantity, in that order. Only the first offending dish index is reported.
func ValidateOrder() pipeline.Stage[*order.Order] {
	return func(_ context.Context, scope *pipeline.Scope[*order.Order]) error {
		body := scope.Body
		if !body.Has("deliverTo") {
			return pipeline.BadRequest("Order must include a deliverTo", errs.NewValueIsRequiredError("deliverTo"))
		}
		if !body.Has("mobileNumber") {
			return pipeline.BadRequest("Order must include a mobileNumber", errs.NewValueIsRequiredError("mobileNumber"))
		}

		items, ok := body.Items("dishes")
		if !ok || len(items) == 0 {
			return pipeline.BadRequest("Order must include at least one dish", errs.NewValueIsRequiredError("dishes"))
		}
		for i, item := range items {
			message := fmt.Sprintf("Dish %d must have a quantity that is an integer greater than 0", i)
			quantity, ok := item.Integer("quantity")
			switch {
			case !ok:
				return pipeline.BadRequest(message,
					errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("dishes[%d].quantity is %s", i, item.Text("quantity"))))
			case quantity <= 0:
				return pipeline.BadRequest(message,
					errs.NewValueIsOutOfRangeError(fmt.Sprintf("dishes[%d].quantity", i), quantity, 1, math.MaxInt))
			}
		}
		return nil
	}
}

// ValidateStatus requires a status from the status set and rejects any change to
// a delivered order.
func ValidateStatus() pipeline.Stage[*order.Order] {
	return func(_ context.Context, scope *pipeline.Scope[*order.Order]) error {
		if err := statusMember(scope.Body); err != nil {
			return err
		}
		if scope.Found == nil {
			return nil
		}
		if err := scope.Found.Status().ValidateChange(); err != nil {
			return pipeline.BadRequest("A delivered order cannot be changed", err)
		}
		return nil
	}
}

// ValidateSuppliedStatus runs the membership check only when a status was sent.
func ValidateSuppliedStatus() pipeline.Stage[*order.Order] {
	return func(_ context.Context, scope *pipeline.Scope[*order.Order]) error {
		if !scope.Body.Has("status") {
			return nil
		}
		return statusMember(scope.Body)
	}
}

// ValidateOrderID rejects a body id that differs from the :orderId route parameter.
func ValidateOrderID() pipeline.Stage[*order.Order] {
	return pipeline.BodyIDMatchesRoute[*order.Order](func(bodyID, routeID string) string {
		return fmt.Sprintf("Order id does not match route id. Order: %s, Route: %s.", bodyID, routeID)
	})
}

// CheckPendingStatus allows deletion of pending orders only.
func CheckPendingStatus() pipeline.Stage[*order.Order] {
	return func(_ context.Context, scope *pipeline.Scope[*order.Order]) error {
		if err := scope.Found.ValidateDelete(); err != nil {
			return pipeline.BadRequest("An order cannot be deleted unless it is pending", err)
		}
		return nil
	}
}

func statusMember(body pipeline.Payload) error {
	raw, _ := body.String("status")
	if _, err := order.ParseStatus(raw); err != nil {
		return pipeline.BadRequest(statusMessage(), err)
	}
	return nil
}

func statusMessage() string {
	names := make([]string, 0, len(order.Statuses()))
	for _, s := range order.Statuses() {
		names = append(names, s.String())
	}
	return "Order must have a status of " + strings.Join(names, ", ")
}

type orderInput struct {
	deliverTo    string
	mobileNumber string
	status       order.Status
	items        []order.LineItem
}

// bindOrder turns a validated body into typed order fields. deliverTo and
// mobileNumber must be JSON strings. Dish snapshot fields are optional; when
// given, text fields must be strings and price an integer.
func bindOrder(body pipeline.Payload) (orderInput, error) {
	var in orderInput
	text := []struct {
		field string
		dst   *string
	}{
		{"deliverTo", &in.deliverTo},
		{"mobileNumber", &in.mobileNumber},
	}
	for _, t := range text {
		s, ok := body.String(t.field)
		if !ok {
			return orderInput{}, pipeline.BadRequest(
				fmt.Sprintf("%s must be a string", t.field),
				errs.NewValueIsInvalidError(t.field),
			)
		}
		*t.dst = s
	}

	status, _ := body.String("status")
	in.status = order.Status(status)

	items, _ := body.Items("dishes")
	in.items = make([]order.LineItem, 0, len(items))
	for i, item := range items {
		snap, err := snapshot(i, item)
		if err != nil {
			return orderInput{}, err
		}
		quantity, _ := item.Integer("quantity")
		line, err := order.NewLineItem(snap, quantity)
		if err != nil {
			return orderInput{}, err
		}
		in.items = append(in.items, line)
	}
	return in, nil
}

func snapshot(i int, item pipeline.Payload) (order.DishSnapshot, error) {
	var s order.DishSnapshot
	text := []struct {
		field string
		dst   *string
	}{
		{"id", &s.ID},
		{"name", &s.Name},
		{"description", &s.Description},
		{"image_url", &s.ImageURL},
	}
	for _, t := range text {
		if !item.Defined(t.field) {
			continue
		}
		v, ok := item.String(t.field)
		if !ok {
			return order.DishSnapshot{}, pipeline.BadRequest(
				fmt.Sprintf("Dish %d %s must be a string", i, t.field),
				errs.NewValueIsInvalidError(fmt.Sprintf("dishes[%d].%s", i, t.field)),
			)
		}
		*t.dst = v
	}

	if item.Defined("price") {
		price, ok := item.Integer("price")
		if !ok {
			return order.DishSnapshot{}, pipeline.BadRequest(
				fmt.Sprintf("Dish %d price must be an integer", i),
				errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("dishes[%d].price", i), fmt.Errorf("%s is not an integer", item.Text("price"))),
			)
		}
		s.Price = price
	}
	return s, nil
}
