package libdiff

import (
	"errors"
	"testing"

	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("error parsing %q: %v", s, err)
	}
	return node
}

func TestIdentityOf(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want ir.IdentityKey
		ok   bool
	}{
		{in: `s`, want: ir.IdentityKey{Type: ir.StringType, Text: "s"}, ok: true},
		{in: `{id: 1, v: 2}`, want: ir.IdentityKey{Type: ir.NumberType, Text: "1"}, ok: true},
		{in: `{Id: x}`, want: ir.IdentityKey{Type: ir.StringType, Text: "x"}, ok: true},
		{in: `{ID: true}`, want: ir.IdentityKey{Type: ir.BoolType, Text: "true"}, ok: true},
		{in: `{ID: b, id: a}`, want: ir.IdentityKey{Type: ir.StringType, Text: "a"}, ok: true},
		{in: `{iD: 1}`},
		{in: `{name: 1}`},
		{in: `1`},
		{in: `[a]`},
		{in: `true`},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := IdentityOf(mustParse(t, tc.in))
			if ok != tc.ok {
				t.Fatalf("ok = %t", ok)
			}
			if got != tc.want {
				t.Errorf("got %#v want %#v", got, tc.want)
			}
		})
	}
	if _, ok := IdentityOf(nil); ok {
		t.Error("nil has no identity")
	}
}

func TestIdentityTypesDiffer(t *testing.T) {
	n, _ := IdentityOf(mustParse(t, `{id: 1}`))
	s, _ := IdentityOf(mustParse(t, `{id: "1"}`))
	if n == s {
		t.Error("number and string ids must differ")
	}
}

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want ArrayKind
	}{
		{"[]", "[]", Identity},
		{"[a, b]", "[]", Identity},
		{"[a, {id: 1}]", "[{Id: 2}]", Identity},
		{"[a, b]", "[a, 1]", Positional},
		{"[{id: 1}]", "[{name: x}]", Positional},
		{"[1, 2]", "[1, 2]", Positional},
		{"[null]", "[a]", Positional},
	} {
		got := Classify(mustParse(t, tc.a).Values, mustParse(t, tc.b).Values)
		if got != tc.want {
			t.Errorf("%s / %s: got %s want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestFindByIdentity(t *testing.T) {
	list := mustParse(t, "[{id: 1, v: first}, {id: 2}, {id: 1, v: second}]").Values
	key := ir.KeyOf(ir.FromInt(1))
	if got := FindByIdentity(list, key); got.Get("v").String != "first" {
		t.Errorf("first match should win, got %v", got)
	}
	if i := IndexOfIdentity(list, ir.KeyOf(ir.FromInt(3))); i != -1 {
		t.Errorf("got %d", i)
	}
	list[0] = nil
	if i := IndexOfIdentity(list, key); i != 2 {
		t.Errorf("nil entries should be skipped, got %d", i)
	}
}

func TestCheckIdentities(t *testing.T) {
	if err := CheckIdentities(mustParse(t, "a: [x, y]\nb: [1, 1]\nc: {d: [{id: 1}, {id: 2}]}\n")); err != nil {
		t.Errorf("unexpected %v", err)
	}
	err := CheckIdentities(mustParse(t, "a: [x]\nc: {d: [{id: 1}, {id: 2}, {ID: 1}]}\n"))
	if !errors.Is(err, ErrIdentityCollision) {
		t.Fatalf("expected collision, got %v", err)
	}
	var ice *IdentityCollisionError
	if !errors.As(err, &ice) {
		t.Fatalf("expected *IdentityCollisionError, got %T", err)
	}
	if ice.Path != "c.d" || ice.First != 0 || ice.Second != 2 {
		t.Errorf("got %+v", ice)
	}
}
