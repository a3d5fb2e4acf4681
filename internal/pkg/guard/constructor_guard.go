// Package guard lets value objects, aggregates and commands tell apart an instance
// built by its constructor from a zero value created with a struct literal.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types whose zero value is not a valid instance.
// Only NewConstructorGuard produces a guard that passes Validate.
//
//	type Parcel struct {
//	    weight int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewParcel(weight int) (Parcel, error) {
//	    if weight <= 0 {
//	        return Parcel{}, errors.New("weight must be positive")
//	    }
//	    return Parcel{weight: weight, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Parcel) Validate() error {
//	    return p.guard.Validate(ErrParcelIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owning value as built by its constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
