package jmerge

import (
	"fmt"
	"slices"

	"github.com/signadot/jmerge/debug"
	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/libdiff"
	"github.com/signadot/jmerge/mergeop"
)

// Apply replays d onto the object target. On error target is left as it
// was.
//
// Removed array elements are dropped once their whole array has been
// processed, so the indices of a position diff always refer to the array
// as it was before the diff. Elements that are explicit nulls are kept.
func Apply(d *mergeop.ObjectDiff, target *ir.Node) error {
	if err := checkDocument("target", target); err != nil {
		return err
	}
	work := target.Clone()
	if err := applyObject("", d, work); err != nil {
		return err
	}
	*target = *work
	return nil
}

func applyObject(path string, d *mergeop.ObjectDiff, obj *ir.Node) error {
	for k, op := range d.All() {
		v, err := applyOp(ir.FieldPath(path, k), op, obj.Get(k))
		if err != nil {
			return err
		}
		if v == nil {
			obj.Delete(k)
			continue
		}
		obj.Set(k, v)
	}
	return nil
}

func applyPosition(path string, d *mergeop.PositionDiff, arr *ir.Node) error {
	for i, op := range d.All() {
		v, err := applyOp(ir.IndexPath(path, i), op, arr.Index(i))
		if err != nil {
			return err
		}
		if i >= len(arr.Values) {
			if v == nil {
				continue
			}
			arr.Values = append(arr.Values, make([]*ir.Node, i+1-len(arr.Values))...)
		}
		arr.Values[i] = v
	}
	compact(arr)
	return nil
}

func applyIdentity(path string, d *mergeop.IdentityDiff, arr *ir.Node) error {
	for k, op := range d.All() {
		i := libdiff.IndexOfIdentity(arr.Values, k)
		var cur *ir.Node
		if i != -1 {
			cur = arr.Values[i]
		}
		v, err := applyOp(ir.KeyPath(path, k), op, cur)
		if err != nil {
			return err
		}
		if i == -1 {
			if v == nil {
				continue
			}
			arr.Values = append(arr.Values, nil)
			i = len(arr.Values) - 1
		}
		arr.Values[i] = v
	}
	compact(arr)
	return nil
}

// applyOp returns the value found at path after applying op to cur; nil
// means the value is gone.
func applyOp(path string, op mergeop.Op, cur *ir.Node) (*ir.Node, error) {
	if debug.Apply() {
		debug.Logf("apply %s at %s\n", op, ir.DisplayPath(path))
	}
	switch x := op.(type) {
	case mergeop.Remove:
		return nil, nil
	case mergeop.Set:
		if x.Value == nil {
			return ir.Null(), nil
		}
		return x.Value.Clone(), nil
	case mergeop.EnterObject:
		if err := checkParent(path, ir.ObjectType, cur); err != nil {
			return nil, err
		}
		return cur, applyObject(path, x.Diff, cur)
	case mergeop.EnterPositionArray:
		if err := checkParent(path, ir.ArrayType, cur); err != nil {
			return nil, err
		}
		return cur, applyPosition(path, x.Diff, cur)
	case mergeop.EnterIdentityArray:
		if err := checkParent(path, ir.ArrayType, cur); err != nil {
			return nil, err
		}
		return cur, applyIdentity(path, x.Diff, cur)
	default:
		return nil, fmt.Errorf("unknown op %T at %s", op, ir.DisplayPath(path))
	}
}

func checkParent(path string, want ir.Type, cur *ir.Node) error {
	if cur == nil {
		return fmt.Errorf("%w at %s: want %s, found nothing", ErrMissingParent, ir.DisplayPath(path), want)
	}
	if cur.Type != want {
		return fmt.Errorf("%w at %s: want %s, found %s", ErrMissingParent, ir.DisplayPath(path), want, cur.Type)
	}
	return nil
}

// compact drops the slots emptied by removals.
func compact(arr *ir.Node) {
	arr.Values = slices.DeleteFunc(arr.Values, func(v *ir.Node) bool { return v == nil })
}
