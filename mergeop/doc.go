// Package mergeop provides the edit operations that make up a diff and the
// rule for merging two diffs made against the same document.
//
// # Operations
//
// A diff is a tree. Each entry maps a key to an Op:
//
//   - Remove: the key is gone
//   - Set: the key now holds Value
//   - EnterObject: a nested ObjectDiff applies to the object at the key
//   - EnterPositionArray: a nested PositionDiff applies to the array at the key
//   - EnterIdentityArray: a nested IdentityDiff applies to the array at the key
//
// ObjectDiff is keyed by field name, PositionDiff by index and IdentityDiff
// by element identity (see ir.KeyOf). All three are Diff[K], an ordered
// map that keeps insertion order.
//
// # Merging
//
// MergeOp decides what happens when both sides edited the same key:
//
//	remove beats everything
//	set beats enter; right's set beats left's set
//	enter + enter of the same kind merges the nested diffs
//
// Entering different kinds of structure at one key is an error wrapping
// ErrStructuralMismatch.
//
// Conflicts reports the keys where this rule dropped one side's edit,
// without affecting the merge.
package mergeop
