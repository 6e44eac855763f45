package shape

import (
	"errors"
	"reflect"
	"testing"
)

type liters struct{ Value float64 }

type twoFields struct {
	A int
	B int
}

type empty struct{}

type hidden struct{ value int }

func TestOf_SingleField(t *testing.T) {
	t.Parallel()

	s := Of[liters]()
	if s.TypeName != "liters" {
		t.Fatalf("expected type name liters, got %q", s.TypeName)
	}
	if s.Kind != reflect.Struct {
		t.Fatalf("expected struct kind, got %s", s.Kind)
	}
	if len(s.Fields) != 1 || s.Fields[0].Name != "Value" {
		t.Fatalf("expected single field Value, got %+v", s.Fields)
	}
}

func TestSingle_Valid(t *testing.T) {
	t.Parallel()

	f, err := Of[liters]().Single(reflect.TypeOf((*float64)(nil)).Elem())
	if err != nil {
		t.Fatalf("expected valid shape, got error: %v", err)
	}
	if f.Type != reflect.TypeOf((*float64)(nil)).Elem() {
		t.Fatalf("expected float64 field, got %s", f.Type)
	}
}

func TestSingle_NilWantSkipsTypeCheck(t *testing.T) {
	t.Parallel()

	if _, err := Of[liters]().Single(nil); err != nil {
		t.Fatalf("expected nil want to skip the type check, got error: %v", err)
	}
}

func TestSingle_NotStruct(t *testing.T) {
	t.Parallel()

	_, err := Of[int]().Single(reflect.TypeOf((*int)(nil)).Elem())
	if !errors.Is(err, ErrNotStruct) {
		t.Fatalf("expected ErrNotStruct, got %v", err)
	}
}

func TestSingle_FieldCount(t *testing.T) {
	t.Parallel()

	if _, err := Of[twoFields]().Single(reflect.TypeOf((*int)(nil)).Elem()); !errors.Is(err, ErrFieldCount) {
		t.Fatalf("expected ErrFieldCount for two fields, got %v", err)
	}
	if _, err := Of[empty]().Single(reflect.TypeOf((*int)(nil)).Elem()); !errors.Is(err, ErrFieldCount) {
		t.Fatalf("expected ErrFieldCount for zero fields, got %v", err)
	}
}

func TestSingle_Unexported(t *testing.T) {
	t.Parallel()

	_, err := Of[hidden]().Single(reflect.TypeOf((*int)(nil)).Elem())
	if !errors.Is(err, ErrUnexported) {
		t.Fatalf("expected ErrUnexported, got %v", err)
	}
}

func TestSingle_FieldTypeMismatch(t *testing.T) {
	t.Parallel()

	_, err := Of[liters]().Single(reflect.TypeOf((*string)(nil)).Elem())
	if !errors.Is(err, ErrFieldType) {
		t.Fatalf("expected ErrFieldType, got %v", err)
	}
}
