package jmerge

import (
	"fmt"

	"github.com/signadot/jmerge/debug"
	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/libdiff"
	"github.com/signadot/jmerge/mergeop"
)

// MergeResult holds a merged document together with the diffs it was
// built from.
type MergeResult struct {
	// Left and Right are the diffs from the parent to each side.
	Left  *mergeop.ObjectDiff
	Right *mergeop.ObjectDiff
	// Merged is the combination of Left and Right that produced Result.
	Merged *mergeop.ObjectDiff
	Result *ir.Node
}

// Conflicts lists where merging kept one side's change over the other's.
func (r *MergeResult) Conflicts() []mergeop.Conflict {
	return mergeop.Conflicts(r.Left, r.Right)
}

// Stats counts the edits the merge applied to the parent.
func (r *MergeResult) Stats() libdiff.Stats {
	return libdiff.Count(r.Merged)
}

// Merge performs a three way merge of left and right, two edited copies of
// parent. None of the inputs are modified and the result shares no memory
// with them.
func Merge(parent, left, right *ir.Node) (*ir.Node, error) {
	res, err := MergeDetailed(parent, left, right)
	if err != nil {
		return nil, err
	}
	return res.Result, nil
}

func MergeDetailed(parent, left, right *ir.Node) (*MergeResult, error) {
	if err := checkDocument("parent", parent); err != nil {
		return nil, err
	}
	leftDiff, err := Diff(parent, left)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	rightDiff, err := Diff(parent, right)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	merged, err := mergeop.MergeObjectDiff(leftDiff, rightDiff)
	if err != nil {
		return nil, err
	}
	if debug.Merge() {
		debug.Logf("merging %d left and %d right edits into %d\n", leftDiff.Len(), rightDiff.Len(), merged.Len())
	}
	result := parent.Clone()
	if err := Apply(merged, result); err != nil {
		return nil, err
	}
	return &MergeResult{
		Left:   leftDiff,
		Right:  rightDiff,
		Merged: merged,
		Result: result,
	}, nil
}
