package pipeline

import (
	"errors"
	"net/http"
)

// Failure is the structured result of a stage that halts a pipeline.
// Status is the HTTP status code, Message the client-facing text and Cause the
// typed error (see package errs) behind it.
type Failure struct {
	Status  int
	Message string
	Cause   error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// BadRequest builds a 400 failure.
func BadRequest(message string, cause error) *Failure {
	return &Failure{Status: http.StatusBadRequest, Message: message, Cause: cause}
}

// NotFound builds a 404 failure.
func NotFound(message string, cause error) *Failure {
	return &Failure{Status: http.StatusNotFound, Message: message, Cause: cause}
}

// MethodNotAllowed builds a 405 failure.
func MethodNotAllowed(message string, cause error) *Failure {
	return &Failure{Status: http.StatusMethodNotAllowed, Message: message, Cause: cause}
}

// AsFailure extracts the *Failure from err's chain, if any.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
