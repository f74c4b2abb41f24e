package ioc

import (
	"errors"
	"strconv"
)

var (
	// ErrNilConstructor is returned when a register call is given a nil
	// constructor function.
	ErrNilConstructor = errors.New("ioc: nil constructor")

	// ErrNilFactory is returned when a delegate register call is given a
	// nil factory function.
	ErrNilFactory = errors.New("ioc: nil factory function")
)

// RegistrationConflictError is returned when a register call targets a
// (type, name) key that already holds a strategy. The prior registration
// is left untouched.
type RegistrationConflictError struct {
	// Type is the abstract type whose slot is already taken.
	Type TypeID

	// Name is the registration name; empty for the unnamed slot.
	Name string
}

// Error implements the error interface.
func (e RegistrationConflictError) Error() string {
	// Example: ioc: type pkg.Storage already registered under name "primary"
	s := "ioc: type " + e.Type.String() + " already registered"
	if e.Name != "" {
		s += " under name " + strconv.Quote(e.Name)
	}
	return s
}

// UnregisteredTypeError is returned when a resolve call targets a
// (type, name) key with no strategy.
type UnregisteredTypeError struct {
	Type TypeID
	Name string
}

// Error implements the error interface.
func (e UnregisteredTypeError) Error() string {
	// Example: ioc: no registration for type pkg.Storage
	s := "ioc: no registration for type " + e.Type.String()
	if e.Name != "" {
		s += " under name " + strconv.Quote(e.Name)
	}
	return s
}

// IncompatibleTypesError is returned at registration time when the
// concrete type's handle cannot satisfy the abstract type it is being
// registered under.
type IncompatibleTypesError struct {
	// Abstract is the requested target type.
	Abstract TypeID

	// Concrete is the handle type the constructor produces.
	Concrete TypeID
}

// Error implements the error interface.
func (e IncompatibleTypesError) Error() string {
	return "ioc: concrete type " + e.Concrete.String() +
		" is not assignable to abstract type " + e.Abstract.String()
}

// WrongTypeInstanceError reports that a strategy produced a value which
// does not satisfy the type it was registered under. It surfaces wrapped
// in a ResolutionError.
type WrongTypeInstanceError struct {
	// Type is the type the instance was expected to satisfy.
	Type TypeID

	// GotType is reflect.TypeOf(instance).String(), or "<nil>" when the
	// strategy produced no value at all.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeInstanceError) Error() string {
	// Example: ioc: instance of wrong type *pkg.Logger, want pkg.Storage
	return "ioc: instance of wrong type " + e.GotType + ", want " + e.Type.String()
}

// ResolutionError is returned when constructing a concrete type, invoking
// a delegate factory, or resolving any constructor parameter fails. It
// wraps the underlying cause, so errors.Is/As reach through it.
type ResolutionError struct {
	// Type and Name identify the registration being resolved when the
	// failure occurred; nested failures wrap recursively.
	Type TypeID
	Name string

	// Cause is the underlying failure.
	Cause error
}

// Error implements the error interface.
func (e ResolutionError) Error() string {
	s := "ioc: resolving type " + e.Type.String()
	if e.Name != "" {
		s += " under name " + strconv.Quote(e.Name)
	}
	s += ": "
	if e.Cause != nil {
		s += e.Cause.Error()
	} else {
		s += "unknown cause"
	}
	return s
}

// Unwrap returns the underlying cause.
func (e ResolutionError) Unwrap() error { return e.Cause }
