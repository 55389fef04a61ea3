package mergeop

import (
	"fmt"

	"github.com/signadot/jmerge/debug"
	"github.com/signadot/jmerge/ir"
)

// MergeOp combines two edits made to the same key by two sides.
//
// A Remove on either side wins. Otherwise a Set on either side wins, and
// when both sides Set, right wins. Otherwise both sides must enter the
// same kind of structure and their nested diffs are merged; entering
// different kinds fails with ErrStructuralMismatch.
func MergeOp(left, right Op) (Op, error) {
	return mergeOp("", left, right)
}

// MergeObjectDiff returns the union of left and right. Keys come in left's
// order followed by keys only right has; keys both sides have are merged
// with MergeOp.
func MergeObjectDiff(left, right *ObjectDiff) (*ObjectDiff, error) {
	return mergeDiff("", left, right, ir.FieldPath)
}

func MergePositionDiff(left, right *PositionDiff) (*PositionDiff, error) {
	return mergeDiff("", left, right, ir.IndexPath)
}

func MergeIdentityDiff(left, right *IdentityDiff) (*IdentityDiff, error) {
	return mergeDiff("", left, right, ir.KeyPath)
}

func mergeOp(path string, left, right Op) (Op, error) {
	switch {
	case left == nil:
		return right, nil
	case right == nil:
		return left, nil
	}
	res, err := mergeOpNonNil(path, left, right)
	if err != nil {
		return nil, err
	}
	if debug.Merge() {
		debug.Logf("merge %s: %s + %s -> %s\n", ir.DisplayPath(path), left, right, res)
	}
	return res, nil
}

func mergeOpNonNil(path string, left, right Op) (Op, error) {
	if _, ok := right.(Remove); ok {
		return right, nil
	}
	if _, ok := left.(Remove); ok {
		return left, nil
	}
	if _, ok := right.(Set); ok {
		return right, nil
	}
	if _, ok := left.(Set); ok {
		return left, nil
	}
	switch l := left.(type) {
	case EnterObject:
		if r, ok := right.(EnterObject); ok {
			d, err := mergeDiff(path, l.Diff, r.Diff, ir.FieldPath)
			if err != nil {
				return nil, err
			}
			return EnterObject{Diff: d}, nil
		}
	case EnterPositionArray:
		if r, ok := right.(EnterPositionArray); ok {
			d, err := mergeDiff(path, l.Diff, r.Diff, ir.IndexPath)
			if err != nil {
				return nil, err
			}
			return EnterPositionArray{Diff: d}, nil
		}
	case EnterIdentityArray:
		if r, ok := right.(EnterIdentityArray); ok {
			d, err := mergeDiff(path, l.Diff, r.Diff, ir.KeyPath)
			if err != nil {
				return nil, err
			}
			return EnterIdentityArray{Diff: d}, nil
		}
	}
	return nil, fmt.Errorf("%w at %s: %s vs %s", ErrStructuralMismatch,
		ir.DisplayPath(path), left.Kind(), right.Kind())
}

func mergeDiff[K comparable](path string, left, right *Diff[K], keyPath func(string, K) string) (*Diff[K], error) {
	res := NewDiff[K]()
	for k, lop := range left.All() {
		rop, ok := right.Get(k)
		if !ok {
			res.Put(k, lop)
			continue
		}
		mop, err := mergeOp(keyPath(path, k), lop, rop)
		if err != nil {
			return nil, err
		}
		res.Put(k, mop)
	}
	for k, rop := range right.All() {
		if _, ok := left.Get(k); ok {
			continue
		}
		res.Put(k, rop)
	}
	return res, nil
}
