// Package parameter implements the specification tree: named, typed parameters
// arranged under ordered compounds.
//
// A parameter tree describes what a host should expose; it is the authoritative
// source of structure and of per-node metadata (UserData). The control tree in
// core/plug is derived from it by core/reconcile.
//
// # Types
//
//   - CompoundParameter: ordered, unique-named children. Declaration order is the
//     semantic order used for value propagation.
//   - TypedParameter[T]: a scalar value (float64, int, string, bool) with a default
//     and optional validation (WithRange).
//   - OpaqueParameter: any other type name, carried as an untyped value.
//
// # Identity
//
// Parameters are matched by name. InternedName recomputes the interned name from
// the current name on every call, so a renamed parameter is a different key.
package parameter
