package ioc_test

import "errors"

// Sample types used across the container tests. The counters instrument
// construction and release of the sample concretions so tests can observe
// the rollback guarantee from outside; the container itself knows nothing
// about them.

type counters struct {
	constructed int
	destructed  int
}

// InterfaceType is the abstract interface most tests register against.
type InterfaceType interface {
	Success() bool
}

// Concretion is a dependency-free implementation of InterfaceType that
// reports construction and release into its counters.
type Concretion struct {
	counts *counters
}

func newConcretion(n *counters) func() (*Concretion, error) {
	return func() (*Concretion, error) {
		if n != nil {
			n.constructed++
		}
		return &Concretion{counts: n}, nil
	}
}

func (c *Concretion) Success() bool { return true }

func (c *Concretion) Close() error {
	if c.counts != nil {
		c.counts.destructed++
	}
	return nil
}

// ComplexConcretion requires a Concretion injected at construction.
type ComplexConcretion struct {
	Inner *Concretion
}

func newComplexConcretion(inner *Concretion) (*ComplexConcretion, error) {
	return &ComplexConcretion{Inner: inner}, nil
}

// Close cascades to the owned inner Concretion.
func (c *ComplexConcretion) Close() error {
	if c.Inner != nil {
		return c.Inner.Close()
	}
	return nil
}

// NestedComposite requires a ComplexConcretion, so rolling it back must
// cascade through the ownership chain down to the innermost Concretion.
type NestedComposite struct {
	Complex *ComplexConcretion
	Iface   InterfaceType
}

func newNestedComposite(cc *ComplexConcretion, iface InterfaceType) (*NestedComposite, error) {
	return &NestedComposite{Complex: cc, Iface: iface}, nil
}

// errBadConstructor is what ThrowingConcretion's constructor fails with.
var errBadConstructor = errors.New("bad constructor")

// ThrowingConcretion is an InterfaceType whose constructor always fails,
// used to trigger rollback of already-built siblings.
type ThrowingConcretion struct{}

func (t *ThrowingConcretion) Success() bool { return false }

func newThrowingConcretion() (*ThrowingConcretion, error) {
	return nil, errBadConstructor
}

// CompositeType requires two dependencies, a concrete one and an
// abstract one, in that declared order.
type CompositeType struct {
	Inner *Concretion
	Iface InterfaceType
}

func newCompositeType(inner *Concretion, iface InterfaceType) (*CompositeType, error) {
	return &CompositeType{Inner: inner, Iface: iface}, nil
}

// DepA and DepB are distinct dependency types that log their constructor
// and Close calls, for asserting resolution and release ordering.

type DepA struct {
	log *[]string
}

func newDepA(log *[]string) func() (*DepA, error) {
	return func() (*DepA, error) {
		*log = append(*log, "construct A")
		return &DepA{log: log}, nil
	}
}

func (d *DepA) Close() error {
	*d.log = append(*d.log, "close A")
	return nil
}

type DepB struct {
	log *[]string
}

func newDepB(log *[]string) func() (*DepB, error) {
	return func() (*DepB, error) {
		*log = append(*log, "construct B")
		return &DepB{log: log}, nil
	}
}

func (d *DepB) Close() error {
	*d.log = append(*d.log, "close B")
	return nil
}

// Pair consumes a DepA and a DepB.
type Pair struct {
	A *DepA
	B *DepB
}

func newPair(a *DepA, b *DepB) (*Pair, error) {
	return &Pair{A: a, B: b}, nil
}

// BadCloser fails its own release; rolling one back must be fatal.
type BadCloser struct{}

func newBadCloser() (*BadCloser, error) { return &BadCloser{}, nil }

func (b *BadCloser) Close() error { return errors.New("close failed") }
