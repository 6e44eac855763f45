package derive

import (
	"errors"
	"testing"

	"github.com/amesgen/newtype-generics/pkg/newtype/shape"
)

// wrapper types with field names the structural constraint cannot cover
type port struct{ Number int }

type host struct{ Name string }

type broken struct {
	A int
	B int
}

func TestFor_Roundtrip(t *testing.T) {
	t.Parallel()

	i, err := For[port, int]()
	if err != nil {
		t.Fatalf("expected derivation to succeed, got: %v", err)
	}

	for _, v := range []int{0, -1, 8080} {
		if got := i.Unpack(i.Pack(v)); got != v {
			t.Fatalf("expected unpack(pack(%d)) == %d, got %d", v, v, got)
		}
	}

	p := port{Number: 443}
	if got := i.Pack(i.Unpack(p)); got != p {
		t.Fatalf("expected pack(unpack(%v)) == %v, got %v", p, p, got)
	}
}

func TestFor_AgreesWithHandWritten(t *testing.T) {
	t.Parallel()

	derived, err := For[host, string]()
	if err != nil {
		t.Fatalf("expected derivation to succeed, got: %v", err)
	}

	manual := FromFuncs(
		func(s string) host { return host{Name: s} },
		func(h host) string { return h.Name })

	for _, s := range []string{"", "localhost", "example.com"} {
		if derived.Pack(s) != manual.Pack(s) {
			t.Fatalf("derived and manual pack disagree on %q", s)
		}
		h := host{Name: s}
		if derived.Unpack(h) != manual.Unpack(h) {
			t.Fatalf("derived and manual unpack disagree on %v", h)
		}
	}
}

func TestFor_ShapeErrors(t *testing.T) {
	t.Parallel()

	if _, err := For[broken, int](); !errors.Is(err, shape.ErrFieldCount) {
		t.Fatalf("expected ErrFieldCount, got %v", err)
	}
	if _, err := For[port, string](); !errors.Is(err, shape.ErrFieldType) {
		t.Fatalf("expected ErrFieldType, got %v", err)
	}
	if _, err := For[int, int](); !errors.Is(err, shape.ErrNotStruct) {
		t.Fatalf("expected ErrNotStruct, got %v", err)
	}
}

func TestMustFor_PanicsOnBadShape(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustFor to panic on a two-field type")
		}
	}()
	MustFor[broken, int]()
}

func TestInstance_Identity(t *testing.T) {
	t.Parallel()

	a := MustFor[port, int]()
	b := MustFor[port, int]()

	if a.Id() == b.Id() {
		t.Fatalf("expected distinct instance ids, both %v", a.Id())
	}
	if a.CreatedAt().IsZero() {
		t.Fatalf("expected non-zero creation time")
	}
}

func TestCompose_Invert(t *testing.T) {
	t.Parallel()

	inner := MustFor[port, int]()
	outer := FromFuncs(
		func(p port) host { return host{Name: "p"} },
		func(h host) port { return port{Number: len(h.Name)} })

	composed := Compose(outer, inner)
	if got := composed.Unpack(composed.Pack(5)); got != 1 {
		t.Fatalf("expected composed roundtrip through len(\"p\") == 1, got %d", got)
	}

	inv := Invert(inner)
	if got := inv.Pack(port{Number: 9}); got != 9 {
		t.Fatalf("expected inverted pack to unwrap, got %d", got)
	}
	if got := inv.Unpack(9); (got != port{Number: 9}) {
		t.Fatalf("expected inverted unpack to wrap, got %v", got)
	}
}

func TestUnderOver_Handles(t *testing.T) {
	t.Parallel()

	pi := MustFor[port, int]()
	hi := MustFor[host, string]()

	show := Under(pi, hi, func(p port) host {
		if p.Number == 80 {
			return host{Name: "http"}
		}
		return host{Name: "other"}
	})
	if got := show(80); got != "http" {
		t.Fatalf("expected \"http\", got %q", got)
	}

	grow := Over(pi, pi, func(n int) int { return n + 1 })
	if got := grow(port{Number: 1}); (got != port{Number: 2}) {
		t.Fatalf("expected port 2, got %v", got)
	}
}
