package wrap

import (
	"cmp"

	"github.com/amesgen/newtype-generics/pkg/newtype/fold"
)

func SumMonoid[T Number]() fold.Monoid[Sum[T]] {
	return fold.Monoid[Sum[T]]{
		Empty:  func() Sum[T] { return Sum[T]{} },
		Append: func(a, b Sum[T]) Sum[T] { return Sum[T]{Value: a.Value + b.Value} },
	}
}

func ProductMonoid[T Number]() fold.Monoid[Product[T]] {
	return fold.Monoid[Product[T]]{
		Empty:  func() Product[T] { return Product[T]{Value: 1} },
		Append: func(a, b Product[T]) Product[T] { return Product[T]{Value: a.Value * b.Value} },
	}
}

func AnyMonoid() fold.Monoid[Any] {
	return fold.Monoid[Any]{
		Empty:  func() Any { return Any{} },
		Append: func(a, b Any) Any { return Any{Value: a.Value || b.Value} },
	}
}

func AllMonoid() fold.Monoid[All] {
	return fold.Monoid[All]{
		Empty:  func() All { return All{Value: true} },
		Append: func(a, b All) All { return All{Value: a.Value && b.Value} },
	}
}

// EndoMonoid combines endofunctions by composition: Append(a, b) applies b
// first, then a. A left fold of [f1, f2, f3] therefore yields f1∘f2∘f3 and
// the last element of the folded slice is applied to the argument first.
func EndoMonoid[T any]() fold.Monoid[Endo[T]] {
	return fold.Monoid[Endo[T]]{
		Empty: func() Endo[T] {
			return Endo[T]{Value: func(t T) T { return t }}
		},
		Append: func(a, b Endo[T]) Endo[T] {
			return Endo[T]{Value: func(t T) T { return a.Value(b.Value(t)) }}
		},
	}
}

func FirstMonoid[T any]() fold.Monoid[First[T]] {
	return fold.Monoid[First[T]]{
		Empty: func() First[T] { return First[T]{Value: Nothing[T]()} },
		Append: func(a, b First[T]) First[T] {
			if a.Value.IsPresent() {
				return a
			}
			return b
		},
	}
}

func LastMonoid[T any]() fold.Monoid[Last[T]] {
	return fold.Monoid[Last[T]]{
		Empty: func() Last[T] { return Last[T]{Value: Nothing[T]()} },
		Append: func(a, b Last[T]) Last[T] {
			if b.Value.IsPresent() {
				return b
			}
			return a
		},
	}
}

func MinSemigroup[T cmp.Ordered]() fold.Semigroup[Min[T]] {
	return fold.Semigroup[Min[T]]{
		Append: func(a, b Min[T]) Min[T] { return Min[T]{Value: min(a.Value, b.Value)} },
	}
}

func MaxSemigroup[T cmp.Ordered]() fold.Semigroup[Max[T]] {
	return fold.Semigroup[Max[T]]{
		Append: func(a, b Max[T]) Max[T] { return Max[T]{Value: max(a.Value, b.Value)} },
	}
}

// DualMonoid lifts a monoid on T to Dual[T], combining in reverse order.
func DualMonoid[T any](m fold.Monoid[T]) fold.Monoid[Dual[T]] {
	return fold.Monoid[Dual[T]]{
		Empty:  func() Dual[T] { return Dual[T]{Value: m.Empty()} },
		Append: func(a, b Dual[T]) Dual[T] { return Dual[T]{Value: m.Append(b.Value, a.Value)} },
	}
}

func AltMonoid[T any]() fold.Monoid[Alt[T]] {
	return fold.Monoid[Alt[T]]{
		Empty: func() Alt[T] { return Alt[T]{} },
		Append: func(a, b Alt[T]) Alt[T] {
			if len(b.Value) == 0 {
				return a
			}
			out := make([]T, 0, len(a.Value)+len(b.Value))
			out = append(out, a.Value...)
			out = append(out, b.Value...)
			return Alt[T]{Value: out}
		},
	}
}

// WrapMonoid lifts a monoid on T to WrappedMonoid[T] by delegation.
func WrapMonoid[T any](m fold.Monoid[T]) fold.Monoid[WrappedMonoid[T]] {
	return fold.Monoid[WrappedMonoid[T]]{
		Empty: func() WrappedMonoid[T] { return WrappedMonoid[T]{Value: m.Empty()} },
		Append: func(a, b WrappedMonoid[T]) WrappedMonoid[T] {
			return WrappedMonoid[T]{Value: m.Append(a.Value, b.Value)}
		},
	}
}

// OptionMonoid lifts an associative combine on T to a monoid on Option[T],
// with the absent value as identity.
func OptionMonoid[T any](combine func(a, b T) T) fold.Monoid[Option[T]] {
	return fold.Monoid[Option[T]]{
		Empty: func() Option[T] { return Option[T]{Value: Nothing[T]()} },
		Append: func(a, b Option[T]) Option[T] {
			if !a.Value.IsPresent() {
				return b
			}
			if !b.Value.IsPresent() {
				return a
			}
			return Option[T]{Value: Just(combine(a.Value.Value(), b.Value.Value()))}
		},
	}
}
