package jmerge

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jmerge/encode"
	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/parse"
)

type diffTest struct {
	name string
	a, b string
	// rendered diff lines
	want string
}

var diffTests = []diffTest{
	{
		name: "same",
		a:    "x: 1\ny: [1, 2]\nz: {q: s}\n",
		b:    "z: {q: s}\ny: [1, 2]\nx: 1\n",
		want: "",
	},
	{
		name: "scalars",
		a:    "x: 1\ny: a\nz: true\nn: null\n",
		b:    "x: 1.5\ny: a\nz: false\nn: null\n",
		want: "x = 1.5\nz = false\n",
	},
	{
		name: "added-removed",
		a:    "x: 1\ny: 2\n",
		b:    "x: 1\nz: 3\n",
		want: "y = null\nz = 3\n",
	},
	{
		name: "type-change",
		a:    "x: 1\ny: [1]\nz: {a: 1}\n",
		b:    "x: \"1\"\ny: {a: 1}\nz: null\n",
		want: "x = \"1\"\ny = {\"a\":1}\nz = null\n",
	},
	{
		name: "nested",
		a:    "c: {a: 1, b: 2, c: 3}\nname: niklas\n",
		b:    "c: {a: 1, b: 2, d: 4}\nname: marian\n",
		want: "c.c = null\nc.d = 4\nname = \"marian\"\n",
	},
	{
		name: "position-array",
		a:    "a: [1, 2, 3]\n",
		b:    "a: [1, 3]\n",
		want: "a[1] = 3\na[2] = null\n",
	},
	{
		name: "position-array-insert-shifts",
		a:    "a: [1, 2]\n",
		b:    "a: [0, 1, 2]\n",
		want: "a[0] = 0\na[1] = 1\na[2] = 2\n",
	},
	{
		name: "identity-array",
		a:    "o: [{id: 1}, {id: 2, v: x}, {id: 3}]\n",
		b:    "o: [{id: 1}, {id: 2, v: y}, {id: 4}]\n",
		want: "o.2.v = \"y\"\no.3 = null\no.4 = {\"id\":4}\n",
	},
	{
		name: "identity-array-reordered",
		a:    "o: [{id: 1}, {Id: 2}, {ID: 3}, s]\n",
		b:    "o: [s, {ID: 3}, {id: 1}, {Id: 2}]\n",
		want: "",
	},
	{
		name: "string-array",
		a:    "tags: [a, b]\n",
		b:    "tags: [b, c]\n",
		want: "tags.a = null\ntags.c = \"c\"\n",
	},
	{
		name: "identity-string-and-number",
		a:    "o: [\"1\", {id: 1}]\n",
		b:    "o: [{id: 1, v: x}]\n",
		want: "o.\"1\" = null\no.1.v = \"x\"\n",
	},
	{
		name: "mixed-array-is-positional",
		a:    "l: [a, 1]\n",
		b:    "l: [1, a]\n",
		want: "l[0] = 1\nl[1] = \"a\"\n",
	},
	{
		name: "explicit-null-element",
		a:    "l: [1, null]\n",
		b:    "l: [1]\n",
		want: "l[1] = null\n",
	},
}

func renderDiff(t *testing.T, a, b *ir.Node) string {
	t.Helper()
	d, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeDiff(d, buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestDiff(t *testing.T) {
	for _, tc := range diffTests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustParse(t, tc.a), mustParse(t, tc.b)
			if diff := cmp.Diff(tc.want, renderDiff(t, a, b)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffIdentity(t *testing.T) {
	for _, tc := range diffTests {
		a := mustParse(t, tc.a)
		d, err := Diff(a, a.Clone())
		if err != nil {
			t.Fatal(err)
		}
		if !d.Empty() {
			t.Errorf("%s: diff of a document with itself has %d entries", tc.name, d.Len())
		}
	}
}

func TestDiffRoundTrip(t *testing.T) {
	for _, tc := range diffTests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustParse(t, tc.a), mustParse(t, tc.b)
			d, err := Diff(a, b)
			if err != nil {
				t.Fatal(err)
			}
			got := a.Clone()
			if err := Apply(d, got); err != nil {
				t.Fatal(err)
			}
			if tc.name == "identity-array-reordered" {
				checkDoc(t, a, got)
				return
			}
			checkDoc(t, b, got)
		})
	}
}

func TestDiffNotDocument(t *testing.T) {
	arr := ir.FromSlice(nil)
	if _, err := Diff(arr, ir.FromKeyVals(nil)); !errors.Is(err, ErrNotDocument) {
		t.Errorf("got %v", err)
	}
	if _, err := Diff(ir.FromKeyVals(nil), nil); !errors.Is(err, ErrNotDocument) {
		t.Errorf("got %v", err)
	}
}

func TestDiffJSONNumberNotation(t *testing.T) {
	for _, tc := range []struct{ a, b string }{
		{`{"n": 1E2}`, `{"n": 100}`},
		{`{"rate": 1e-5, "n": 1E2}`, `{"rate": 0.00001, "n": 100}`},
		{`{"l": [-1.5e+3, 2.5E0]}`, `{"l": [-1500, 2.5]}`},
	} {
		a, err := parse.ParseDocument([]byte(tc.a), parse.ParseJSON())
		if err != nil {
			t.Fatal(err)
		}
		b, err := parse.ParseDocument([]byte(tc.b), parse.ParseJSON())
		if err != nil {
			t.Fatal(err)
		}
		d, err := Diff(a, b)
		if err != nil {
			t.Fatal(err)
		}
		if !d.Empty() {
			t.Errorf("%s vs %s: got %d entries, want none", tc.a, tc.b, d.Len())
		}
	}
}
