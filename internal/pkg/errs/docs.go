// Package errs provides the typed errors shared by the domain model, the stores and
// the request pipelines.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) returned by Unwrap,
//     so callers can classify with errors.Is
//   - a struct carrying the details (parameter name, offending value, cause)
//   - constructors with and without a cause
//   - an Error method producing a single-line message
//
// Available types:
//   - ValueIsRequiredError: a mandatory value is missing or empty
//   - ValueIsInvalidError: a value is present but malformed
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: a record with the given id does not exist
//   - OperationIsNotAllowedError: an operation is refused in the current state
package errs
