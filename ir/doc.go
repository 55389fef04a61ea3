// Package ir provides the in-memory representation of the documents jmerge
// compares and merges.
//
// # Overview
//
// A document is a tree of *Node values. The IR is a tagged union: Type
// selects which fields carry the value.
//
//   - NullType: explicit null
//   - BoolType: Bool
//   - NumberType: Number (float64; comparisons are exact)
//   - StringType: String
//   - ObjectType: Fields[i] is the key of Values[i]; keys are unique and ordered
//   - ArrayType: Values
//
// A nil *Node means "absent" and is distinct from an explicit null.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("niklas")},
//	    {Key: "n", Val: ir.FromInt(1)},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.Null()})
//
// # Equality
//
// Equal and Compare treat objects as mappings, so two objects with the same
// fields in a different order are equal.
//
// # Identity
//
// KeyOf turns a value into a comparable IdentityKey; arrays whose elements
// all carry one are matched by identity rather than by position (see
// package libdiff).
//
// # Thread Safety
//
// Nodes are not synchronised. Diff and merge never mutate their inputs, so
// sharing read-only trees across goroutines is fine; mutate only private
// clones.
package ir
