// Package derive synthesizes capability instances for wrapper types from
// their shape alone. It is the fallback dispatch path for wrapper types the
// structural constraint in package newtype cannot cover: types whose single
// field is not named Value, or opaque types needing hand-written pairs.
//
// Key constructs:
// - For/MustFor: derive an Instance from a one-field shape, no per-type code
// - FromFuncs: declare an Instance by hand for opaque representations
// - Under/Over: run functions across the wrapper boundary via handles
// - Compose/Invert: algebra of instances (isomorphisms compose and invert)
//
// Every Instance carries a uuid identity and a UTC creation time for
// debugging and registry purposes; both are fixed at construction.
package derive
