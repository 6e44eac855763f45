package newtype

// Wrapper is the capability contract. A type N satisfies Wrapper[O] when its
// underlying type is a struct with the single exported field Value of the
// representation type O, i.e. when N is a transparent renaming of O.
//
// The constraint doubles as the shape check: a type with extra fields, a
// differently typed field, or a non-struct underlying type does not satisfy
// it, so malformed wrappers are rejected at compile time.
type Wrapper[O any] interface {
	~struct{ Value O }
}

// Pack wraps a representation value into the wrapper type N.
func Pack[N Wrapper[O], O any](o O) N {
	return N(struct{ Value O }{Value: o})
}

// Unpack strips the wrapper from a value of N, returning the bare
// representation value. Inverse of Pack.
func Unpack[N Wrapper[O], O any](n N) O {
	return struct{ Value O }(n).Value
}
