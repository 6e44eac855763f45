package lift

import (
	"github.com/amesgen/newtype-generics/pkg/newtype"
)

// Op returns the unpack function of the wrapper pinned by the witness. The
// witness is never invoked; it only selects N and O.
func Op[N newtype.Wrapper[O], O any](_ func(o O) N) func(n N) O {
	return newtype.Unpack[N, O]
}

// Ala runs a caller-supplied higher-order function as if it operated on
// representation types: values are packed right before hof's injection
// point and unpacked right after its extraction point. The structure hof
// imposes (fold over a slice, composition, anything of the right shape) is
// entirely the caller's choice.
//
//	total := Ala(wrap.SumOf[int], fold.Map[int](wrap.SumMonoid[int]()))
//	total([]int{1, 2, 3, 4}) // 10
func Ala[N newtype.Wrapper[O], N2 newtype.Wrapper[O2], O, O2, B any](
	ctor func(o O) N,
	hof func(inject func(o O) N) func(b B) N2) func(b B) O2 {
	return AlaWith(ctor, hof, func(o O) O { return o })
}

// AlaWith is Ala with an extra view applied before packing, for folds whose
// elements first need projecting into the representation type.
//
//	letters := AlaWith(wrap.SumOf[int],
//		fold.Map[string](wrap.SumMonoid[int]()),
//		func(s string) int { return len(s) })
func AlaWith[N newtype.Wrapper[O], N2 newtype.Wrapper[O2], O, O2, A, B any](
	_ func(o O) N,
	hof func(inject func(a A) N) func(b B) N2,
	view func(a A) O) func(b B) O2 {

	run := hof(func(a A) N {
		return newtype.Pack[N, O](view(a))
	})

	return func(b B) O2 {
		return newtype.Unpack[N2, O2](run(b))
	}
}

// Under runs a function on wrapper values given only representation-level
// inputs and outputs.
func Under[N newtype.Wrapper[O], N2 newtype.Wrapper[O2], O, O2 any](
	_ func(o O) N,
	f func(n N) N2) func(o O) O2 {
	return func(o O) O2 {
		return newtype.Unpack[N2, O2](f(newtype.Pack[N, O](o)))
	}
}

// Over exposes a function on representation values as a function on wrapper
// values. Inverse direction of Under. The target wrapper appears only in the
// result here, so Over takes a second witness to pin it; like the first, it
// is never invoked.
func Over[N newtype.Wrapper[O], N2 newtype.Wrapper[O2], O, O2 any](
	_ func(o O) N,
	_ func(o2 O2) N2,
	f func(o O) O2) func(n N) N2 {
	return func(n N) N2 {
		return newtype.Pack[N2, O2](f(newtype.Unpack[N, O](n)))
	}
}

// UnderF is Under lifted over slices: pack is applied pointwise to the
// input elements and unpack pointwise to the output elements, so f operates
// entirely at the wrapper level while the caller only touches
// representation-typed slices. A nil slice stays nil.
func UnderF[N newtype.Wrapper[O], N2 newtype.Wrapper[O2], O, O2 any](
	_ func(o O) N,
	f func(ns []N) []N2) func(os []O) []O2 {
	return func(os []O) []O2 {
		return mapSlice(f(mapSlice(os, newtype.Pack[N, O])), newtype.Unpack[N2, O2])
	}
}

// OverF is Over lifted over slices, unpacking on the way in and packing on
// the way out. Takes a second witness for the target wrapper, as Over does.
func OverF[N newtype.Wrapper[O], N2 newtype.Wrapper[O2], O, O2 any](
	_ func(o O) N,
	_ func(o2 O2) N2,
	f func(os []O) []O2) func(ns []N) []N2 {
	return func(ns []N) []N2 {
		return mapSlice(f(mapSlice(ns, newtype.Unpack[N, O])), newtype.Pack[N2, O2])
	}
}

// UnderM is Under lifted pointwise over map values, keys untouched.
func UnderM[N newtype.Wrapper[O], N2 newtype.Wrapper[O2], K comparable, O, O2 any](
	_ func(o O) N,
	f func(ns map[K]N) map[K]N2) func(os map[K]O) map[K]O2 {
	return func(os map[K]O) map[K]O2 {
		return mapValues(f(mapValues(os, newtype.Pack[N, O])), newtype.Unpack[N2, O2])
	}
}

// OverM is Over lifted pointwise over map values, keys untouched. Takes a
// second witness for the target wrapper, as Over does.
func OverM[N newtype.Wrapper[O], N2 newtype.Wrapper[O2], K comparable, O, O2 any](
	_ func(o O) N,
	_ func(o2 O2) N2,
	f func(os map[K]O) map[K]O2) func(ns map[K]N) map[K]N2 {
	return func(ns map[K]N) map[K]N2 {
		return mapValues(f(mapValues(ns, newtype.Unpack[N, O])), newtype.Pack[N2, O2])
	}
}

func mapSlice[A, B any](as []A, f func(a A) B) []B {
	if as == nil {
		return nil
	}

	bs := make([]B, len(as))
	for i, a := range as {
		bs[i] = f(a)
	}
	return bs
}

func mapValues[K comparable, A, B any](as map[K]A, f func(a A) B) map[K]B {
	if as == nil {
		return nil
	}

	bs := make(map[K]B, len(as))
	for k, a := range as {
		bs[k] = f(a)
	}
	return bs
}
