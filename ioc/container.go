package ioc

import "sync"

// strategy is the stored recipe for producing one instance: the ordered
// dependency types to resolve first, and a construct function fed the
// resolved values in declared order. Delegate registrations have no
// params and ignore the argument slice.
type strategy struct {
	params    []TypeID
	construct func(args []any) (any, error)
}

// Container is the registration store plus resolution engine.
//
// Registrations are keyed by (abstract type, optional name) and persist
// until removed or the container is dropped. Removing a registration
// never affects instances returned by earlier resolves; the container
// does not track resolved instances.
//
// A single lock guards the store. Each store operation (register, remove,
// lookup) holds it for its own duration; resolution re-enters the store
// once per dependency. Complete registration before resolving from
// multiple goroutines.
type Container struct {
	mu       sync.RWMutex
	registry map[registrationKey]*strategy
}

// New creates an empty container.
func New() *Container {
	return &Container{registry: make(map[registrationKey]*strategy)}
}

// Len returns the number of live registrations, for diagnostics.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.registry)
}

// add inserts a strategy, refusing to overwrite an occupied key.
func (c *Container) add(k registrationKey, s *strategy) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.registry[k]; exists {
		return RegistrationConflictError{Type: k.typ, Name: k.name}
	}
	c.registry[k] = s
	return nil
}

func (c *Container) lookup(k registrationKey) (*strategy, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.registry[k]
	return s, ok
}

func (c *Container) removeKey(k registrationKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.registry[k]; !ok {
		return false
	}
	delete(c.registry, k)
	return true
}

// IsRegistered reports whether the unnamed slot for T holds a strategy.
// It is a pure lookup with no side effects.
func IsRegistered[T any](c *Container) bool {
	return IsRegisteredNamed[T](c, "")
}

// IsRegisteredNamed reports whether the (T, name) slot holds a strategy.
func IsRegisteredNamed[T any](c *Container, name string) bool {
	_, ok := c.lookup(registrationKey{typ: TypeOf[T](), name: name})
	return ok
}

// Remove deletes the unnamed registration for T, reporting whether a
// registration existed. Removing an absent key is a no-op, not an error.
// Instances already resolved are unaffected.
func Remove[T any](c *Container) bool {
	return RemoveNamed[T](c, "")
}

// RemoveNamed deletes the (T, name) registration, reporting whether a
// registration existed.
func RemoveNamed[T any](c *Container, name string) bool {
	return c.removeKey(registrationKey{typ: TypeOf[T](), name: name})
}
