package shape

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotStruct  = errors.New("wrapper type is not a struct")
	ErrFieldCount = errors.New("wrapper type must have exactly one field")
	ErrUnexported = errors.New("wrapper field must be exported")
	ErrFieldType  = errors.New("wrapper field type does not match representation type")
)

// Field describes a single declared field of a wrapper type.
type Field struct {
	Name     string
	Index    int
	Exported bool
	Type     reflect.Type
}

// Shape describes the declared layout of a type: its outer name, package
// path, kind and field list. It is produced once by Of and only consumed
// afterwards; derivation never inspects types directly.
type Shape struct {
	TypeName string
	PkgPath  string
	Kind     reflect.Kind
	Fields   []Field
}

// Of builds the Shape of the type N.
func Of[N any]() Shape {
	t := reflect.TypeOf((*N)(nil)).Elem()

	s := Shape{
		TypeName: t.Name(),
		PkgPath:  t.PkgPath(),
		Kind:     t.Kind(),
	}

	if t.Kind() != reflect.Struct {
		return s
	}

	s.Fields = make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		s.Fields = append(s.Fields, Field{
			Name:     f.Name,
			Index:    i,
			Exported: f.IsExported(),
			Type:     f.Type,
		})
	}
	return s
}

// Single validates the one-constructor/one-field shape and returns the
// field when it holds. The want argument, if non-nil, is the expected
// representation type.
func (s Shape) Single(want reflect.Type) (Field, error) {
	if s.Kind != reflect.Struct {
		return Field{}, fmt.Errorf("%s: %w (kind %s)", s.TypeName, ErrNotStruct, s.Kind)
	}

	if len(s.Fields) != 1 {
		return Field{}, fmt.Errorf("%s: %w (has %d)", s.TypeName, ErrFieldCount, len(s.Fields))
	}

	f := s.Fields[0]
	if !f.Exported {
		return Field{}, fmt.Errorf("%s.%s: %w", s.TypeName, f.Name, ErrUnexported)
	}

	if want != nil && f.Type != want {
		return Field{}, fmt.Errorf("%s.%s: %w (field %s, want %s)",
			s.TypeName, f.Name, ErrFieldType, f.Type, want)
	}

	return f, nil
}
