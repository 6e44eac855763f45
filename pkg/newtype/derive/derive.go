package derive

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/amesgen/newtype-generics/pkg/newtype/shape"
)

// Instance is a capability handle for one wrapper type: a pack/unpack pair
// forming an isomorphism between N and its representation O. Instances are
// immutable after construction.
type Instance[N, O any] struct {
	id        uuid.UUID
	createdAt time.Time
	pack      func(o O) N
	unpack    func(n N) O
}

// For derives an Instance for any wrapper type N whose shape is exactly one
// exported field of type O. The pack/unpack pair is synthesized from the
// shape alone; no wrapper-specific code is involved. Any other shape is
// rejected here, never at pack/unpack time.
func For[N, O any]() (Instance[N, O], error) {
	f, err := shape.Of[N]().Single(reflect.TypeOf((*O)(nil)).Elem())
	if err != nil {
		return Instance[N, O]{}, err
	}

	idx := f.Index
	return FromFuncs(
		func(o O) N {
			var n N
			v := reflect.ValueOf(&n).Elem()
			v.Field(idx).Set(reflect.ValueOf(&o).Elem())
			return n
		},
		func(n N) O {
			return reflect.ValueOf(&n).Elem().Field(idx).Interface().(O)
		}), nil
}

// MustFor is For, panicking on a shape mismatch. Intended for package-level
// instance declarations where the shape is statically known to be correct.
func MustFor[N, O any]() Instance[N, O] {
	i, err := For[N, O]()
	if err != nil {
		panic(err)
	}
	return i
}

// FromFuncs builds a hand-written Instance for wrapper types the shape
// engine cannot inspect (opaque or abstractly defined representations).
// The isomorphism laws are the caller's contract.
func FromFuncs[N, O any](pack func(o O) N, unpack func(n N) O) Instance[N, O] {
	return Instance[N, O]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		pack:      pack,
		unpack:    unpack,
	}
}

// Pack converts a representation value to a wrapper value
func (i Instance[N, O]) Pack(o O) N {
	return i.pack(o)
}

// Unpack converts a wrapper value back to its representation
func (i Instance[N, O]) Unpack(n N) O {
	return i.unpack(n)
}

func (i Instance[N, O]) Id() uuid.UUID {
	return i.id
}

// CreatedAt time creation (UTC)
func (i Instance[N, O]) CreatedAt() time.Time {
	return i.createdAt
}

// Compose chains two instances through a shared representation: an
// isomorphism N ~ O composed with M ~ N yields M ~ O.
func Compose[M, N, O any](outer Instance[M, N], inner Instance[N, O]) Instance[M, O] {
	return FromFuncs(
		func(o O) M { return outer.pack(inner.pack(o)) },
		func(m M) O { return inner.unpack(outer.unpack(m)) })
}

// Invert swaps the directions of an instance: the representation becomes
// the wrapper and vice versa.
func Invert[N, O any](i Instance[N, O]) Instance[O, N] {
	return FromFuncs(i.unpack, i.pack)
}

// Under runs a wrapper-level function given representation-level inputs
// and outputs, using explicit handles for both wrappers involved.
func Under[N, N2, O, O2 any](i Instance[N, O], i2 Instance[N2, O2],
	f func(n N) N2) func(o O) O2 {
	return func(o O) O2 {
		return i2.unpack(f(i.pack(o)))
	}
}

// Over runs a representation-level function at the wrapper level, using
// explicit handles for both wrappers involved.
func Over[N, N2, O, O2 any](i Instance[N, O], i2 Instance[N2, O2],
	f func(o O) O2) func(n N) N2 {
	return func(n N) N2 {
		return i2.pack(f(i.unpack(n)))
	}
}
