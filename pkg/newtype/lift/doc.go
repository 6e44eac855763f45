// Package lift contains the higher-order combinators that apply ordinary
// functions "through" a wrapper's pack/unpack isomorphism. No combinator
// ever inspects a wrapper value; each receives a constructor witness whose
// only job is to pin the wrapper and representation types, and performs all
// transformation through newtype.Pack and newtype.Unpack.
//
// Key operations:
// - Op: the wrapper's unpack, selected by witness
// - Ala/AlaWith: run a caller-supplied higher-order function at the
//   representation level (fold, composition, any structure of fitting shape)
// - Under/Over: run a wrapper-level function on representations, and the
//   reverse
// - UnderF/OverF: Under/Over applied pointwise across slices
// - UnderM/OverM: the same across map values
//
// Combinators involving two wrappers carry two independent Wrapper
// constraints. In the Under direction the second wrapper is inferred from
// the higher-order argument; in the Over direction it only occurs in the
// result, so Over, OverF and OverM take a second witness to pin it.
package lift
