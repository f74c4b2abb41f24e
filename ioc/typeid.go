package ioc

import "reflect"

// TypeID is a stable, comparable token identifying a statically-known
// type. One TypeID exists per distinct type; two TypeIDs compare equal
// iff they identify the same type. It is the type half of a registration
// key and appears in error values for diagnostics.
type TypeID struct {
	rt reflect.Type
}

// TypeOf returns the TypeID for T.
//
// T is usually an interface type or a pointer type:
//
//	TypeOf[Storage]()   // abstract interface
//	TypeOf[*PGStore]()  // concrete handle registered as itself
func TypeOf[T any]() TypeID {
	return TypeID{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// String returns the Go syntax of the identified type, e.g. "*pkg.DB".
func (id TypeID) String() string {
	if id.rt == nil {
		return "<nil>"
	}
	return id.rt.String()
}

// registrationKey identifies one registration slot. An empty name means
// the default, unnamed registration. Names scope within a type: the same
// name under two different types addresses two independent slots.
type registrationKey struct {
	typ  TypeID
	name string
}
