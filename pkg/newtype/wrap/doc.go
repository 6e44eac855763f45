// Package wrap is the standard wrapper catalog: single-field renamings of
// library types, each satisfying the newtype.Wrapper constraint together
// with a constructor that serves as the witness argument of the lift
// combinators.
//
// Catalog:
// - Sum/Product: numeric values folded with + and *
// - Any/All: bools folded with OR and AND
// - Endo: endofunctions folded by composition
// - Down: ordered values with the comparison flipped
// - First/Last, Option: optional values with choice folding
// - Min/Max: ordered values folded by comparison (semigroups)
// - Identity, Const, Dual, Alt, ZipList, Compose: structural renamings
// - Action, Arrow: wrapped computations and functions
// - Fixed: fixed-point decimal renaming of a scaled integer
// - WrappedMonoid: delegates to an externally supplied monoid
//
// The folding semantics live in the monoid instances (SumMonoid, EndoMonoid,
// ...), which plug into fold.Map to form the higher-order argument of
// lift.Ala.
package wrap
