package ioc

import "reflect"

// Registration is done through free generic functions rather than
// methods because Go methods cannot carry their own type parameters.
//
// RegisterType and its arity variants bind an abstract type TAbstract to
// a constructor for a concrete type TConcrete. The constructor's
// dependency types P1..Pn are declared as generic arguments; at resolve
// time each is resolved through its own unnamed registration, in declared
// order, before the constructor runs. Named registrations are reachable
// only via ResolveNamed and are never auto-injected.

// RegisterType binds TAbstract to a dependency-free constructor.
//
//	err := ioc.RegisterType[Storage](c, NewMemStore)
//
// It fails with RegistrationConflictError if the unnamed TAbstract slot
// is already occupied, and with IncompatibleTypesError if *TConcrete
// cannot satisfy TAbstract. A failed call leaves the store unchanged.
func RegisterType[TAbstract any, TConcrete any](c *Container, ctor func() (*TConcrete, error)) error {
	return RegisterTypeNamed[TAbstract](c, "", ctor)
}

// RegisterTypeNamed is RegisterType for the (TAbstract, name) slot.
func RegisterTypeNamed[TAbstract any, TConcrete any](c *Container, name string, ctor func() (*TConcrete, error)) error {
	if ctor == nil {
		return ErrNilConstructor
	}
	if err := checkAssignable[TAbstract, TConcrete](); err != nil {
		return err
	}
	s := &strategy{
		construct: func([]any) (any, error) { return ctor() },
	}
	return c.add(registrationKey{typ: TypeOf[TAbstract](), name: name}, s)
}

// RegisterType1 binds TAbstract to a constructor taking one dependency
// of type P1, resolved through P1's unnamed registration.
func RegisterType1[TAbstract any, TConcrete any, P1 any](c *Container, ctor func(P1) (*TConcrete, error)) error {
	return RegisterType1Named[TAbstract](c, "", ctor)
}

// RegisterType1Named is RegisterType1 for the (TAbstract, name) slot.
func RegisterType1Named[TAbstract any, TConcrete any, P1 any](c *Container, name string, ctor func(P1) (*TConcrete, error)) error {
	if ctor == nil {
		return ErrNilConstructor
	}
	if err := checkAssignable[TAbstract, TConcrete](); err != nil {
		return err
	}
	s := &strategy{
		params: []TypeID{TypeOf[P1]()},
		construct: func(args []any) (any, error) {
			p1, err := argAs[P1](args, 0)
			if err != nil {
				return nil, err
			}
			return ctor(p1)
		},
	}
	return c.add(registrationKey{typ: TypeOf[TAbstract](), name: name}, s)
}

// RegisterType2 binds TAbstract to a constructor taking two dependencies,
// resolved in declared order.
func RegisterType2[TAbstract any, TConcrete any, P1 any, P2 any](c *Container, ctor func(P1, P2) (*TConcrete, error)) error {
	return RegisterType2Named[TAbstract](c, "", ctor)
}

// RegisterType2Named is RegisterType2 for the (TAbstract, name) slot.
func RegisterType2Named[TAbstract any, TConcrete any, P1 any, P2 any](c *Container, name string, ctor func(P1, P2) (*TConcrete, error)) error {
	if ctor == nil {
		return ErrNilConstructor
	}
	if err := checkAssignable[TAbstract, TConcrete](); err != nil {
		return err
	}
	s := &strategy{
		params: []TypeID{TypeOf[P1](), TypeOf[P2]()},
		construct: func(args []any) (any, error) {
			p1, err := argAs[P1](args, 0)
			if err != nil {
				return nil, err
			}
			p2, err := argAs[P2](args, 1)
			if err != nil {
				return nil, err
			}
			return ctor(p1, p2)
		},
	}
	return c.add(registrationKey{typ: TypeOf[TAbstract](), name: name}, s)
}

// RegisterType3 binds TAbstract to a constructor taking three
// dependencies, resolved in declared order.
func RegisterType3[TAbstract any, TConcrete any, P1 any, P2 any, P3 any](c *Container, ctor func(P1, P2, P3) (*TConcrete, error)) error {
	return RegisterType3Named[TAbstract](c, "", ctor)
}

// RegisterType3Named is RegisterType3 for the (TAbstract, name) slot.
func RegisterType3Named[TAbstract any, TConcrete any, P1 any, P2 any, P3 any](c *Container, name string, ctor func(P1, P2, P3) (*TConcrete, error)) error {
	if ctor == nil {
		return ErrNilConstructor
	}
	if err := checkAssignable[TAbstract, TConcrete](); err != nil {
		return err
	}
	s := &strategy{
		params: []TypeID{TypeOf[P1](), TypeOf[P2](), TypeOf[P3]()},
		construct: func(args []any) (any, error) {
			p1, err := argAs[P1](args, 0)
			if err != nil {
				return nil, err
			}
			p2, err := argAs[P2](args, 1)
			if err != nil {
				return nil, err
			}
			p3, err := argAs[P3](args, 2)
			if err != nil {
				return nil, err
			}
			return ctor(p1, p2, p3)
		},
	}
	return c.add(registrationKey{typ: TypeOf[TAbstract](), name: name}, s)
}

// RegisterDelegate binds T to a user-supplied factory. The container
// resolves nothing on the factory's behalf; a factory error propagates
// to the resolving caller wrapped in a ResolutionError.
func RegisterDelegate[T any](c *Container, factory func() (T, error)) error {
	return RegisterDelegateNamed(c, "", factory)
}

// RegisterDelegateNamed is RegisterDelegate for the (T, name) slot.
func RegisterDelegateNamed[T any](c *Container, name string, factory func() (T, error)) error {
	if factory == nil {
		return ErrNilFactory
	}
	s := &strategy{
		construct: func([]any) (any, error) { return factory() },
	}
	return c.add(registrationKey{typ: TypeOf[T](), name: name}, s)
}

// checkAssignable verifies at registration time that a *TConcrete handle
// satisfies TAbstract, so resolve-time conversion cannot fail.
func checkAssignable[TAbstract any, TConcrete any]() error {
	at := TypeOf[TAbstract]()
	ct := reflect.TypeOf((*TConcrete)(nil))
	if !ct.AssignableTo(at.rt) {
		return IncompatibleTypesError{Abstract: at, Concrete: TypeID{rt: ct}}
	}
	return nil
}

// argAs converts a resolved dependency back to its declared parameter
// type. A mismatch means the dependency's registration produced a value
// that does not satisfy P, e.g. a delegate returning a typed nil.
func argAs[P any](args []any, i int) (P, error) {
	p, ok := args[i].(P)
	if !ok {
		var zero P
		return zero, WrongTypeInstanceError{Type: TypeOf[P](), GotType: typeNameOf(args[i])}
	}
	return p, nil
}

func typeNameOf(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
