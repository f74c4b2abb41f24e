// Package goioc is a small inversion-of-control container for Go.
//
// The repository is organised around one library package plus examples:
//
//   - ioc: the container itself — a registration store mapping abstract
//     types (optionally qualified by a name) to creation strategies, and
//     a resolution engine that recursively constructs dependency graphs
//     with rollback of partially built siblings on failure.
//   - examples/*: runnable wiring examples.
//
// Goals are a small API surface, explicit dependency declarations
// (constructor parameter types are spelled out as generic arguments at
// registration time, never discovered via reflection on the constructor),
// and structured errors you can assert in tests.
//
// Start with the ioc package docs and examples/basic for end-to-end usage.
package goioc
