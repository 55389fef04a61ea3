// Package libdiff computes structural diffs between documents.
//
// # Usage
//
//	d := libdiff.DiffObject(oldDoc, newDoc)
//	for key, op := range d.All() {
//	    fmt.Println(key, op)
//	}
//
// Objects are compared field by field. Arrays are compared one of two
// ways, decided once per pair of arrays by Classify:
//
//   - identity arrays, where every element is a string or an object with an
//     id, Id or ID field, are matched by that identity, so reordering is not
//     a change
//   - all other arrays are compared index by index
//
// Values of different types, and scalars that are not exactly equal, are
// replaced wholesale.
//
// # Related Packages
//
//   - github.com/signadot/jmerge/ir - document representation
//   - github.com/signadot/jmerge/mergeop - the edit operations diffs are made of
package libdiff
