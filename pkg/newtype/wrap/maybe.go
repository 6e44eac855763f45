package wrap

// Maybe is an optional value: either present with a value or absent. It is
// the representation type of the choice wrappers (First, Last, Option).
type Maybe[T any] struct {
	value   T
	present bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// Value returns the contained value, or the zero value when absent.
func (m Maybe[T]) Value() T {
	return m.value
}

// OrElse returns the contained value, or the fallback when absent.
func (m Maybe[T]) OrElse(fallback T) T {
	if m.present {
		return m.value
	}
	return fallback
}
