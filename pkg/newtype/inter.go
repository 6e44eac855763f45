package newtype

// Packer wraps a representation value into the wrapper type
type Packer[N, O any] interface {
	// Pack converts a representation value to a wrapper value
	Pack(o O) N
}

// Unpacker strips the wrapper from a wrapper value
type Unpacker[N, O any] interface {
	// Unpack converts a wrapper value back to its representation
	Unpack(n N) O
}

// Capability bundles both directions of the isomorphism for use as an
// explicit handle where the structural constraint cannot apply (wrapper
// types whose single field is not named Value, or opaque library types)
type Capability[N, O any] interface {
	Packer[N, O]
	Unpacker[N, O]
}
