// Package guard detects value objects and entities that were declared as zero
// values instead of being built by their constructor.
//
// A type embeds a ConstructorGuard, sets it with NewConstructorGuard inside its
// constructor, and checks it from its Validate method:
//
//	type Slot struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (s *Slot) Validate() error {
//	    return s.guard.Validate(ErrSlotIsNotConstructed)
//	}
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as built by its constructor. The zero value is "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
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
