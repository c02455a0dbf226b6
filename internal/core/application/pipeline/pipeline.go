package pipeline

import "context"

// Request is the parsed input of one operation: the id taken from the route (empty
// for collection routes) and the decoded body.
type Request struct {
	RouteID string
	Body    Payload
}

// NewRequest bundles a route id and a decoded body.
func NewRequest(routeID string, body Payload) Request {
	return Request{RouteID: routeID, Body: body}
}

// Scope is the per-request state handed to every stage and to the terminal
// handler. Found holds the record located by an existence stage.
type Scope[T any] struct {
	Request
	Found T
}

// Stage is one validator. Returning nil lets the pipeline continue; any error
// halts it and is returned by Run unchanged.
type Stage[T any] func(ctx context.Context, scope *Scope[T]) error

// Terminal performs the read or mutation once every stage has passed.
type Terminal[T, R any] func(ctx context.Context, scope *Scope[T]) (R, error)

// Run executes stages in order, then terminal. The first stage error wins.
func Run[T, R any](ctx context.Context, req Request, stages []Stage[T], terminal Terminal[T, R]) (R, error) {
	scope := &Scope[T]{Request: req}
	for _, stage := range stages {
		if err := stage(ctx, scope); err != nil {
			var zero R
			return zero, err
		}
	}
	return terminal(ctx, scope)
}
