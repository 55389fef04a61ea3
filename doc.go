// Package jmerge computes structural diffs between JSON or YAML documents
// and merges two edited copies of a common parent.
//
// # Usage
//
//	d, err := jmerge.Diff(old, new)        // what changed
//	err = jmerge.Apply(d, doc)             // replay it
//	res, err := jmerge.Merge(base, theirs, mine)
//
// Merge diffs the parent against both sides, merges the two diffs with
// mergeop.MergeObjectDiff and applies the result to a copy of the parent.
// Where both sides changed the same value the right side wins, removals
// win over everything and nested changes are combined key by key.
// MergeDetailed also returns the three diffs, and
// MergeResult.Conflicts lists where one side's change was dropped.
//
// Arrays whose elements are all strings or objects with an id, Id or ID
// field are matched by identity; any other array is compared by index.
//
// # Related Packages
//
//   - github.com/signadot/jmerge/ir - document representation
//   - github.com/signadot/jmerge/libdiff - diff computation
//   - github.com/signadot/jmerge/mergeop - edit operations and the merge rule
//   - github.com/signadot/jmerge/parse, encode - text codecs
package jmerge
