// Package guard implements the constructor-guard pattern used by domain objects
// to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the object was not built through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed one in a
// domain struct and set it with NewConstructorGuard inside the constructor;
// the zero value fails Validate, so direct struct literals are detectable.
//
// Example:
//
//	type Rider struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRider(id kernel.UUID) Rider {
//	    return Rider{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (r Rider) Validate() error {
//	    return r.guard.Validate(ErrRiderIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
