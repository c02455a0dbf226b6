package dishes

import (
	"context"
	"fmt"
	"math"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/errs"
)

// detailFields are checked for presence in this order.
var detailFields = []string{"name", "description", "price", "image_url"}

func detailStages() []pipeline.Stage[*dish.Dish] {
	stages := make([]pipeline.Stage[*dish.Dish], 0, len(detailFields)+1)
	for _, field := range detailFields {
		stages = append(stages, pipeline.BodyDataHas[*dish.Dish](field))
	}
	return append(stages, PriceIsValid())
}

// PriceIsValid requires price to be an integer greater than 0.
// Fails with 400 "price requires a valid number".
func PriceIsValid() pipeline.Stage[*dish.Dish] {
	return func(_ context.Context, scope *pipeline.Scope[*dish.Dish]) error {
		price, ok := scope.Body.Integer("price")
		switch {
		case !ok:
			return pipeline.BadRequest(
				"price requires a valid number",
				errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not an integer", scope.Body.Text("price"))),
			)
		case price <= 0:
			return pipeline.BadRequest("price requires a valid number", errs.NewValueIsOutOfRangeError("price", price, 1, math.MaxInt))
		}
		return nil
	}
}

// IDMatchesRoute rejects a body id that differs from the :dishId route parameter.
func IDMatchesRoute() pipeline.Stage[*dish.Dish] {
	return pipeline.BodyIDMatchesRoute[*dish.Dish](func(bodyID, routeID string) string {
		return fmt.Sprintf("Dish id does not match :dishId. Dish: %s, :dishId: %s", bodyID, routeID)
	})
}

type details struct {
	name        string
	description string
	price       int
	imageURL    string
}

// bindDetails turns a validated body into typed dish fields. Text fields must be
// JSON strings.
func bindDetails(body pipeline.Payload) (details, error) {
	var in details
	text := map[string]*string{
		"name":        &in.name,
		"description": &in.description,
		"image_url":   &in.imageURL,
	}
	for _, field := range detailFields {
		dst, ok := text[field]
		if !ok {
			continue
		}
		s, ok := body.String(field)
		if !ok {
			return details{}, pipeline.BadRequest(
				fmt.Sprintf("%s must be a string", field),
				errs.NewValueIsInvalidError(field),
			)
		}
		*dst = s
	}

	in.price, _ = body.Integer("price")
	return in, nil
}
