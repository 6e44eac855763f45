package fold

// Semigroup is an associative combine over M.
type Semigroup[M any] struct {
	Append func(a, b M) M
}

// Monoid is a Semigroup with an identity element.
type Monoid[M any] struct {
	Empty  func() M
	Append func(a, b M) M
}

// Semigroup forgets the identity element.
func (m Monoid[M]) Semigroup() Semigroup[M] {
	return Semigroup[M]{Append: m.Append}
}

// Map is foldMap over a slice: it maps every element into the monoid and
// folds the results left to right, starting from the identity. The shape of
// the returned function matches the hof argument of lift.Ala and
// lift.AlaWith.
func Map[A, M any](m Monoid[M]) func(f func(a A) M) func(as []A) M {
	return func(f func(a A) M) func(as []A) M {
		return func(as []A) M {
			acc := m.Empty()
			for _, a := range as {
				acc = m.Append(acc, f(a))
			}
			return acc
		}
	}
}

// Map1 is foldMap over a non-empty slice for semigroups without an identity
// (min/max style folds). It panics when given an empty slice.
func Map1[A, M any](s Semigroup[M]) func(f func(a A) M) func(as []A) M {
	return func(f func(a A) M) func(as []A) M {
		return func(as []A) M {
			if len(as) == 0 {
				panic("fold: Map1 on empty slice")
			}

			acc := f(as[0])
			for _, a := range as[1:] {
				acc = s.Append(acc, f(a))
			}
			return acc
		}
	}
}

// Concat folds a slice of monoid values into one.
func Concat[M any](m Monoid[M], ms []M) M {
	acc := m.Empty()
	for _, v := range ms {
		acc = m.Append(acc, v)
	}
	return acc
}

// Flip reverses the argument order of a monoid's combine, giving the dual
// monoid.
func Flip[M any](m Monoid[M]) Monoid[M] {
	return Monoid[M]{
		Empty:  m.Empty,
		Append: func(a, b M) M { return m.Append(b, a) },
	}
}
