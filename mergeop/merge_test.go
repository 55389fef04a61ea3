package mergeop

import (
	"errors"
	"testing"

	"github.com/signadot/jmerge/ir"
)

func set(i int64) Op {
	return Set{Value: ir.FromInt(i)}
}

func TestMergeOp(t *testing.T) {
	obj := EnterObject{Diff: NewObjectDiff().Put("x", set(1))}
	pos := EnterPositionArray{Diff: NewPositionDiff().Put(0, set(1))}
	for _, tc := range []struct {
		name        string
		left, right Op
		want        Op
	}{
		{"remove-left", Remove{}, set(1), Remove{}},
		{"remove-right", set(1), Remove{}, Remove{}},
		{"remove-beats-enter", obj, Remove{}, Remove{}},
		{"set-right-wins", set(1), set(2), set(2)},
		{"set-beats-enter-left", set(3), obj, set(3)},
		{"set-beats-enter-right", pos, set(3), set(3)},
		{"only-left", obj, nil, obj},
		{"only-right", nil, pos, pos},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MergeOp(tc.left, tc.right)
			if err != nil {
				t.Fatal(err)
			}
			if !EqualOps(got, tc.want) {
				t.Errorf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestMergeOpRecurses(t *testing.T) {
	left := EnterObject{Diff: NewObjectDiff().
		Put("a", set(1)).
		Put("b", Remove{})}
	right := EnterObject{Diff: NewObjectDiff().
		Put("b", set(2)).
		Put("c", set(3)).
		Put("a", set(4))}
	got, err := MergeOp(left, right)
	if err != nil {
		t.Fatal(err)
	}
	want := EnterObject{Diff: NewObjectDiff().
		Put("a", set(4)).
		Put("b", Remove{}).
		Put("c", set(3))}
	if !EqualOps(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
	d := got.(EnterObject).Diff
	keys := d.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("key order %v", keys)
	}
}

func TestMergeOpMismatch(t *testing.T) {
	left := NewObjectDiff().Put("a", EnterObject{Diff: NewObjectDiff().
		Put("b", EnterPositionArray{Diff: NewPositionDiff().Put(0, set(1))})})
	right := NewObjectDiff().Put("a", EnterObject{Diff: NewObjectDiff().
		Put("b", EnterIdentityArray{Diff: NewIdentityDiff().Put(ir.KeyOf(ir.FromString("x")), Remove{})})})
	_, err := MergeObjectDiff(left, right)
	if !errors.Is(err, ErrStructuralMismatch) {
		t.Fatalf("expected structural mismatch, got %v", err)
	}
	if want := "structural mismatch at a.b: position-array vs identity-array"; err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
}

func TestMergeDiffsDoNotShare(t *testing.T) {
	left := NewPositionDiff().Put(1, Remove{})
	right := NewPositionDiff().Put(3, set(4))
	got, err := MergePositionDiff(left, right)
	if err != nil {
		t.Fatal(err)
	}
	got.Put(5, Remove{})
	if left.Len() != 1 || right.Len() != 1 {
		t.Error("merge result shares storage with its inputs")
	}
	if got.Len() != 3 {
		t.Errorf("len %d", got.Len())
	}
}

func TestMergeIdentityDiff(t *testing.T) {
	k2, k3 := ir.KeyOf(ir.FromInt(2)), ir.KeyOf(ir.FromInt(3))
	left := NewIdentityDiff().Put(k2, Remove{})
	right := NewIdentityDiff().Put(k3, Remove{}).Put(k2, set(9))
	got, err := MergeIdentityDiff(left, right)
	if err != nil {
		t.Fatal(err)
	}
	want := NewIdentityDiff().Put(k2, Remove{}).Put(k3, Remove{})
	if !got.Equal(want) {
		t.Errorf("got %v want %v", got.Keys(), want.Keys())
	}
}

func TestDiffPutKeepsPosition(t *testing.T) {
	d := NewObjectDiff().Put("a", set(1)).Put("b", set(2)).Put("a", Remove{})
	var keys []string
	var ops []Op
	for k, o := range d.All() {
		keys = append(keys, k)
		ops = append(ops, o)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys %v", keys)
	}
	if _, ok := ops[0].(Remove); !ok {
		t.Errorf("a = %v", ops[0])
	}
	var nilDiff *ObjectDiff
	if !nilDiff.Empty() || nilDiff.Len() != 0 {
		t.Error("nil diff should be empty")
	}
	if _, ok := nilDiff.Get("a"); ok {
		t.Error("nil diff has no entries")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{RemoveKind, SetKind, EnterObjectKind, EnterPositionArrayKind, EnterIdentityArrayKind} {
		d, _ := k.MarshalText()
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("%s round tripped to %s", k, back)
		}
	}
	if SetKind.IsStructural() || !EnterObjectKind.IsStructural() {
		t.Error("IsStructural")
	}
}
