// Package guard provides ConstructorGuard, a marker that lets aggregates and value
// objects tell a constructor-built instance apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object is a
// zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose invariants are only established by a
// constructor. The zero value is "not constructed"; NewConstructorGuard returns a
// guard that passes validation.
//
// Example:
//
//	var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish")
//
//	type Dish struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (d *Dish) Validate() error {
//	    return d.guard.Validate(ErrDishIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
