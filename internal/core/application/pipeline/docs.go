// Package pipeline runs the validation chains that guard every dish and order
// operation.
//
// A request body is decoded once into a Payload. An operation is an ordered list
// of stages followed by a terminal handler: Run executes the stages strictly in
// declaration order and stops at the first one that returns an error, so only the
// first violation is reported. Stages report rule violations as *Failure values
// carrying the HTTP status and the client-facing message.
//
// Existence stages hand the record they found to later stages and to the
// terminal handler through Scope.Found; nothing else in the scope is mutated.
//
//	stages := []pipeline.Stage[*dish.Dish]{
//	    pipeline.Exists(repo.Get, notFound),
//	    pipeline.BodyDataHas[*dish.Dish]("name"),
//	}
//	d, err := pipeline.Run(ctx, req, stages, update)
package pipeline
