// Package fold provides monoidal folding over slices. It supplies the
// higher-order "structure" argument that lift.Ala and lift.AlaWith are
// deliberately agnostic about: the combinators adapt types, Map decides
// what folding means.
//
// Key operations:
// - Map: foldMap with a Monoid, identity-seeded left fold
// - Map1: foldMap with a Semigroup over a non-empty slice (panics on empty)
// - Concat: fold a slice of monoid values
// - Flip: dual monoid (combine arguments reversed)
//
// Monoid instances for the standard wrapper catalog live in package wrap.
package fold
