// Package ioc provides a generic inversion-of-control container.
//
// A Container stores registrations: mappings from an abstract type
// (optionally qualified by a name) to a creation strategy. A strategy is
// either a constructor for a concrete type, whose dependency types are
// declared explicitly as generic arguments at registration time, or a
// user-supplied factory (delegate). Resolving an abstract type looks up
// its strategy, recursively resolves each declared constructor parameter,
// and invokes the constructor with the results.
//
// Design goals:
//   - Lightweight: small API surface, no lifetime scopes, no caching —
//     every successful resolve produces a fresh, caller-owned instance.
//   - Explicit wiring: constructor parameter types are declared by the
//     caller; the container never inspects constructor signatures.
//   - Safe failure: if any step of a resolve fails, every dependency
//     instance already built for that call is released (via io.Closer,
//     when implemented) in reverse construction order before the error
//     reaches the caller — a failed resolve leaks nothing.
//   - Test-friendly: structured, typed errors for conflicts, missing
//     registrations and resolution failures, usable with errors.Is/As.
//
// Notes on performance:
//   - The success path is dominated by a map read per resolved type and
//     one function call per constructor.
//   - Error paths avoid fmt.Errorf to keep failure handling inexpensive
//     when used for control flow.
package ioc
