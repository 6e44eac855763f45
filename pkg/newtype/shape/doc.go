// Package shape inspects a type's declared layout and exposes it as a plain
// Shape value: outer name, package path, and field list. It is the only
// place the library touches reflection for structure; the derive package
// consumes Shape values and never inspects types itself.
//
// Key operations:
// - Of: build the Shape of a type
// - Single: validate the one-constructor/one-field wrapper layout
//
// Shape violations are reported with the sentinel errors ErrNotStruct,
// ErrFieldCount, ErrUnexported and ErrFieldType.
package shape
