package ioc

import "io"

// Resolve produces a fresh instance for the unnamed registration of T.
//
// Ownership of the instance transfers to the caller; the container keeps
// no reference to it. Failures:
//   - UnregisteredTypeError when T has no unnamed registration
//   - ResolutionError when the constructor, the delegate factory, or any
//     recursively-resolved dependency fails (the cause is wrapped)
//
// A failed resolve releases every dependency instance it built before
// returning, so the call leaves zero net live instances behind.
func Resolve[T any](c *Container) (T, error) {
	return ResolveNamed[T](c, "")
}

// ResolveNamed is Resolve against the exact (T, name) registration. It
// does not fall back to the unnamed registration of T.
func ResolveNamed[T any](c *Container, name string) (T, error) {
	var zero T
	k := registrationKey{typ: TypeOf[T](), name: name}
	v, err := c.resolveKey(k)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		// Unreachable for constructor registrations (assignability is
		// checked when registering); a delegate returning a typed nil or
		// nothing at all lands here.
		release(v)
		return zero, ResolutionError{
			Type: k.typ, Name: k.name,
			Cause: WrongTypeInstanceError{Type: k.typ, GotType: typeNameOf(v)},
		}
	}
	return out, nil
}

// resolveKey runs one resolution: look up the strategy, resolve its
// declared dependencies in order into a buildScope, then construct.
// The deferred rollback releases everything the scope still owns unless
// construction succeeded and the scope was committed.
func (c *Container) resolveKey(k registrationKey) (any, error) {
	s, ok := c.lookup(k)
	if !ok {
		return nil, UnregisteredTypeError{Type: k.typ, Name: k.name}
	}

	scope := &buildScope{}
	defer scope.rollback()

	for _, p := range s.params {
		// Dependencies always resolve through their unnamed slot.
		arg, err := c.resolveKey(registrationKey{typ: p})
		if err != nil {
			return nil, ResolutionError{Type: k.typ, Name: k.name, Cause: err}
		}
		scope.add(arg)
	}

	v, err := s.construct(scope.built)
	if err != nil {
		return nil, ResolutionError{Type: k.typ, Name: k.name, Cause: err}
	}

	// Ownership of the accumulated dependencies has transferred into v.
	scope.commit()
	return v, nil
}

// buildScope owns the dependency instances accumulated during one
// resolution until the enclosing constructor succeeds. On commit the
// release action is disarmed; on rollback the scope releases everything
// it still owns in reverse construction order.
type buildScope struct {
	built     []any
	committed bool
}

func (s *buildScope) add(v any) { s.built = append(s.built, v) }

func (s *buildScope) commit() { s.committed = true }

func (s *buildScope) rollback() {
	if s.committed {
		return
	}
	for i := len(s.built) - 1; i >= 0; i-- {
		release(s.built[i])
	}
	s.built = nil
}

// release tears down a rolled-back instance. Instances that hold
// resources implement io.Closer; releasing an instance that owns
// dependencies of its own is expected to cascade through its Close.
// Release must be infallible: a Close error here is unrecoverable.
func release(v any) {
	closer, ok := v.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		panic("ioc: release failed during rollback: " + err.Error())
	}
}
