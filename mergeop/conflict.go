package mergeop

import (
	"github.com/signadot/jmerge/ir"
)

// Conflict is a place where both sides edited the same key and merging
// kept only one of the edits.
type Conflict struct {
	Path  string
	Left  Op
	Right Op
}

// Kept returns the edit MergeOp keeps for the conflict, or nil when the
// two sides cannot be merged at all.
func (c Conflict) Kept() Op {
	res, err := MergeOp(c.Left, c.Right)
	if err != nil {
		return nil
	}
	return res
}

// Conflicts lists, in diff order, the keys where merging left and right
// discards one side's edit. It never changes what MergeObjectDiff
// produces.
func Conflicts(left, right *ObjectDiff) []Conflict {
	return conflicts(nil, "", left, right, ir.FieldPath)
}

func conflicts[K comparable](res []Conflict, path string, left, right *Diff[K], keyPath func(string, K) string) []Conflict {
	for k, lop := range left.All() {
		rop, ok := right.Get(k)
		if !ok {
			continue
		}
		res = opConflicts(res, keyPath(path, k), lop, rop)
	}
	return res
}

func opConflicts(res []Conflict, path string, left, right Op) []Conflict {
	switch l := left.(type) {
	case Remove:
		if _, ok := right.(Remove); ok {
			return res
		}
	case Set:
		if r, ok := right.(Set); ok && ir.Equal(l.Value, r.Value) {
			return res
		}
	case EnterObject:
		if r, ok := right.(EnterObject); ok {
			return conflicts(res, path, l.Diff, r.Diff, ir.FieldPath)
		}
	case EnterPositionArray:
		if r, ok := right.(EnterPositionArray); ok {
			return conflicts(res, path, l.Diff, r.Diff, ir.IndexPath)
		}
	case EnterIdentityArray:
		if r, ok := right.(EnterIdentityArray); ok {
			return conflicts(res, path, l.Diff, r.Diff, ir.KeyPath)
		}
	}
	return append(res, Conflict{Path: path, Left: left, Right: right})
}
