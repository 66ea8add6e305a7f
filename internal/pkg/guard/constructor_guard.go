// Package guard detects zero-value instances of types that must be built
// through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in entities, commands and queries. Only
// NewConstructorGuard sets the flag, so a struct literal or zero value fails
// Validate.
//
// Example:
//
//	type CancelTrainingCommand struct {
//	    trainingID kernel.UUID
//	    reason     string
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c CancelTrainingCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelTrainingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
