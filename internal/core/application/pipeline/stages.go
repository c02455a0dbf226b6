package pipeline

import (
	"context"
	"errors"
	"fmt"

	"grubdash/internal/pkg/errs"
)

// Finder looks a record up by id and returns an error wrapping
// errs.ErrObjectNotFound when there is none.
type Finder[T any] func(ctx context.Context, id string) (T, error)

// BodyDataHas requires a truthy value for field.
// Fails with 400 "Must include a <field>".
func BodyDataHas[T any](field string) Stage[T] {
	return func(_ context.Context, scope *Scope[T]) error {
		if scope.Body.Has(field) {
			return nil
		}
		return BadRequest(fmt.Sprintf("Must include a %s", field), errs.NewValueIsRequiredError(field))
	}
}

// Exists looks up the route id with find and stores the record in Scope.Found.
// A missing record fails with 404 and the message built by notFound; any other
// lookup error is returned as is.
func Exists[T any](find Finder[T], notFound func(id string) string) Stage[T] {
	return func(ctx context.Context, scope *Scope[T]) error {
		found, err := find(ctx, scope.RouteID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return NotFound(notFound(scope.RouteID), err)
			}
			return err
		}

		scope.Found = found
		return nil
	}
}

// BodyIDMatchesRoute rejects a body whose truthy "id" differs from the route id.
// Only a JSON string can match; a truthy id of any other type is a mismatch.
// Fails with 400 and the message built by mismatch.
func BodyIDMatchesRoute[T any](mismatch func(bodyID, routeID string) string) Stage[T] {
	return func(_ context.Context, scope *Scope[T]) error {
		if !scope.Body.Has("id") {
			return nil
		}

		if bodyID, ok := scope.Body.String("id"); ok && bodyID == scope.RouteID {
			return nil
		}

		bodyID := scope.Body.Text("id")
		return BadRequest(
			mismatch(bodyID, scope.RouteID),
			errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%s does not match %s", bodyID, scope.RouteID)),
		)
	}
}
