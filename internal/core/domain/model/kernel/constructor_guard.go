package kernel

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate() when a nil error is passed as the validation
// error, so that validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands, and queries are only
// created through their designated constructor functions. Embedding a guard
// in a struct makes zero-value instances detectable: the internal flag is
// only set when the object passes through its constructor.
//
// Example usage:
//
//	var ErrSelectionNotConstructed = errors.New("Selection must be created via NewSelection")
//
//	type Selection struct {
//	    categoryID UUID
//	    optionID   UUID
//	    guard      ConstructorGuard
//	}
//
//	func NewSelection(categoryID, optionID UUID) (Selection, error) {
//	    // validate inputs...
//	    return Selection{categoryID: categoryID, optionID: optionID, guard: NewConstructorGuard()}, nil
//	}
//
//	func (s Selection) Validate() error {
//	    return s.guard.Validate(ErrSelectionNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor, validationError otherwise. If validationError is nil,
// ErrDefaultConstructorGuard is returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
