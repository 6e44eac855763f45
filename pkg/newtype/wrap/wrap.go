package wrap

import (
	"cmp"
	"context"
)

// Number covers the types the arithmetic wrappers fold over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Sum wraps a value folded with addition.
type Sum[T Number] struct{ Value T }

func SumOf[T Number](v T) Sum[T] { return Sum[T]{Value: v} }

// Product wraps a value folded with multiplication.
type Product[T Number] struct{ Value T }

func ProductOf[T Number](v T) Product[T] { return Product[T]{Value: v} }

// Any wraps a bool folded with OR.
type Any struct{ Value bool }

func AnyOf(v bool) Any { return Any{Value: v} }

// All wraps a bool folded with AND.
type All struct{ Value bool }

func AllOf(v bool) All { return All{Value: v} }

// Endo wraps an endofunction folded with composition.
type Endo[T any] struct{ Value func(T) T }

func EndoOf[T any](f func(T) T) Endo[T] { return Endo[T]{Value: f} }

// Apply runs the wrapped endofunction.
func (e Endo[T]) Apply(t T) T { return e.Value(t) }

// Down wraps an ordered value with the comparison order flipped.
type Down[T cmp.Ordered] struct{ Value T }

func DownOf[T cmp.Ordered](v T) Down[T] { return Down[T]{Value: v} }

// Compare orders Down values in reverse of their representations, making it
// directly usable with slices.SortFunc and friends.
func (d Down[T]) Compare(o Down[T]) int { return cmp.Compare(o.Value, d.Value) }

// First wraps an optional value with left-biased choice.
type First[T any] struct{ Value Maybe[T] }

func FirstOf[T any](v Maybe[T]) First[T] { return First[T]{Value: v} }

// Last wraps an optional value with right-biased choice.
type Last[T any] struct{ Value Maybe[T] }

func LastOf[T any](v Maybe[T]) Last[T] { return Last[T]{Value: v} }

// Min wraps an ordered value folded by taking the smaller.
type Min[T cmp.Ordered] struct{ Value T }

func MinOf[T cmp.Ordered](v T) Min[T] { return Min[T]{Value: v} }

// Max wraps an ordered value folded by taking the larger.
type Max[T cmp.Ordered] struct{ Value T }

func MaxOf[T cmp.Ordered](v T) Max[T] { return Max[T]{Value: v} }

// Identity wraps a value with no further semantics.
type Identity[T any] struct{ Value T }

func IdentityOf[T any](v T) Identity[T] { return Identity[T]{Value: v} }

// Const wraps a value of A while carrying B as a phantom parameter.
type Const[A, B any] struct{ Value A }

func ConstOf[A, B any](v A) Const[A, B] { return Const[A, B]{Value: v} }

// Dual wraps a value whose monoid combines in reverse order.
type Dual[T any] struct{ Value T }

func DualOf[T any](v T) Dual[T] { return Dual[T]{Value: v} }

// Alt wraps a slice folded with concatenation as choice.
type Alt[T any] struct{ Value []T }

func AltOf[T any](v []T) Alt[T] { return Alt[T]{Value: v} }

// ZipList wraps a slice combined pointwise rather than by concatenation.
type ZipList[T any] struct{ Value []T }

func ZipOf[T any](v []T) ZipList[T] { return ZipList[T]{Value: v} }

// ZipWith combines two ZipLists pointwise, truncating to the shorter.
func ZipWith[T any](f func(a, b T) T, x, y ZipList[T]) ZipList[T] {
	n := min(len(x.Value), len(y.Value))
	if n == 0 {
		return ZipList[T]{}
	}

	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = f(x.Value[i], y.Value[i])
	}
	return ZipList[T]{Value: out}
}

// Compose wraps a nested container, a renaming of one functor applied to
// another.
type Compose[T any] struct{ Value [][]T }

func ComposeOf[T any](v [][]T) Compose[T] { return Compose[T]{Value: v} }

// Action wraps a deferred computation.
type Action[T any] struct{ Value func(context.Context) T }

func ActionOf[T any](f func(context.Context) T) Action[T] { return Action[T]{Value: f} }

// Run executes the wrapped action.
func (a Action[T]) Run(ctx context.Context) T { return a.Value(ctx) }

// Arrow wraps a unary function.
type Arrow[A, B any] struct{ Value func(A) B }

func ArrowOf[A, B any](f func(A) B) Arrow[A, B] { return Arrow[A, B]{Value: f} }

// Apply runs the wrapped function.
func (a Arrow[A, B]) Apply(v A) B { return a.Value(v) }

// Fixed wraps a scaled integer used as a fixed-point decimal. The scale is
// owned by the consumer; this is only the renaming.
type Fixed struct{ Value int64 }

func FixedOf(v int64) Fixed { return Fixed{Value: v} }

// WrappedMonoid wraps a value whose monoid is supplied externally, see
// WrapMonoid.
type WrappedMonoid[T any] struct{ Value T }

func WrappedMonoidOf[T any](v T) WrappedMonoid[T] { return WrappedMonoid[T]{Value: v} }

// Option wraps an optional value lifting a semigroup on T to a monoid, see
// OptionMonoid.
type Option[T any] struct{ Value Maybe[T] }

func OptionOf[T any](v Maybe[T]) Option[T] { return Option[T]{Value: v} }
