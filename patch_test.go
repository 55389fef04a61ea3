package jmerge

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jmerge/encode"
	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/mergeop"
)

func TestApplyNoPartialApplication(t *testing.T) {
	target := mustParse(t, "b: 3\n")
	before := encode.MustString(target)
	d := mergeop.NewObjectDiff().
		Put("a", mergeop.Set{Value: ir.FromInt(1)}).
		Put("b", mergeop.EnterObject{Diff: mergeop.NewObjectDiff().Put("x", mergeop.Remove{})})
	err := Apply(d, target)
	if !errors.Is(err, ErrMissingParent) {
		t.Fatalf("expected missing parent, got %v", err)
	}
	if want := "missing parent at b: want Object, found Number"; err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
	if after := encode.MustString(target); after != before {
		t.Errorf("target changed to %s", after)
	}
}

func TestApplyMissingParent(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
		d    *mergeop.ObjectDiff
		path string
	}{
		{
			name: "absent-object",
			doc:  "a: 1\n",
			d:    mergeop.NewObjectDiff().Put("x", mergeop.EnterObject{Diff: mergeop.NewObjectDiff()}),
			path: "x",
		},
		{
			name: "absent-position-element",
			doc:  "l: [1]\n",
			d: mergeop.NewObjectDiff().Put("l", mergeop.EnterPositionArray{Diff: mergeop.NewPositionDiff().
				Put(3, mergeop.EnterObject{Diff: mergeop.NewObjectDiff()})}),
			path: "l[3]",
		},
		{
			name: "absent-identity-element",
			doc:  "l: [a]\n",
			d: mergeop.NewObjectDiff().Put("l", mergeop.EnterIdentityArray{Diff: mergeop.NewIdentityDiff().
				Put(ir.KeyOf(ir.FromString("b")), mergeop.EnterObject{Diff: mergeop.NewObjectDiff()})}),
			path: "l.b",
		},
		{
			name: "array-not-object",
			doc:  "l: {a: 1}\n",
			d:    mergeop.NewObjectDiff().Put("l", mergeop.EnterPositionArray{Diff: mergeop.NewPositionDiff()}),
			path: "l",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Apply(tc.d, mustParse(t, tc.doc))
			if !errors.Is(err, ErrMissingParent) {
				t.Fatalf("expected missing parent, got %v", err)
			}
			if want := "missing parent at " + tc.path + ":"; len(err.Error()) < len(want) || err.Error()[:len(want)] != want {
				t.Errorf("got %q", err.Error())
			}
		})
	}
}

func TestApplyPositionArray(t *testing.T) {
	target := mustParse(t, "l: [null, 1, 2, null]\n")
	d := mergeop.NewObjectDiff().Put("l", mergeop.EnterPositionArray{Diff: mergeop.NewPositionDiff().
		Put(1, mergeop.Remove{}).
		Put(2, mergeop.Set{Value: ir.Null()}).
		Put(6, mergeop.Set{Value: ir.FromInt(6)})})
	if err := Apply(d, target); err != nil {
		t.Fatal(err)
	}
	checkDoc(t, mustParse(t, "l: [null, null, null, 6]\n"), target)
}

func TestApplyIdentityArray(t *testing.T) {
	target := mustParse(t, "l: [a, {id: 1, v: x}, b]\n")
	d := mergeop.NewObjectDiff().Put("l", mergeop.EnterIdentityArray{Diff: mergeop.NewIdentityDiff().
		Put(ir.KeyOf(ir.FromString("a")), mergeop.Remove{}).
		Put(ir.KeyOf(ir.FromString("zz")), mergeop.Remove{}).
		Put(ir.KeyOf(ir.FromInt(1)), mergeop.EnterObject{Diff: mergeop.NewObjectDiff().
			Put("v", mergeop.Set{Value: ir.FromString("y")})}).
		Put(ir.KeyOf(ir.FromString("c")), mergeop.Set{Value: ir.FromString("c")})})
	if err := Apply(d, target); err != nil {
		t.Fatal(err)
	}
	checkDoc(t, mustParse(t, "l: [{id: 1, v: y}, b, c]\n"), target)
}

func TestApplyClonesSetValues(t *testing.T) {
	v := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromInt(1)}})
	target := mustParse(t, "")
	if err := Apply(mergeop.NewObjectDiff().Put("x", mergeop.Set{Value: v}), target); err != nil {
		t.Fatal(err)
	}
	target.Get("x").Set("k", ir.FromInt(2))
	if v.Get("k").Number != 1 {
		t.Error("applied value shares memory with the diff")
	}
}

func TestApplyKeepsFieldOrder(t *testing.T) {
	target := mustParse(t, "a: 1\nb: 2\nc: 3\n")
	d := mergeop.NewObjectDiff().
		Put("d", mergeop.Set{Value: ir.FromInt(4)}).
		Put("b", mergeop.Set{Value: ir.FromInt(5)}).
		Put("a", mergeop.Remove{})
	if err := Apply(d, target); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "c", "d"}, target.Fields); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
