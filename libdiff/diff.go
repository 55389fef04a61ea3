package libdiff

import (
	"github.com/signadot/jmerge/debug"
	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/mergeop"
)

// DiffValue returns the edit turning a into b, or nil when they do not
// differ. A nil node is an absent value.
func DiffValue(a, b *ir.Node) mergeop.Op {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return mergeop.Set{Value: b}
	case b == nil:
		return mergeop.Remove{}
	case a.Type != b.Type:
		return mergeop.Set{Value: b}
	case a.Type.IsLeaf():
		if ir.Equal(a, b) {
			return nil
		}
		return mergeop.Set{Value: b}
	}
	switch a.Type {
	case ir.ObjectType:
		d := DiffObject(a, b)
		if d.Empty() {
			return nil
		}
		return mergeop.EnterObject{Diff: d}
	case ir.ArrayType:
		if Classify(a.Values, b.Values) == Identity {
			d := DiffIdentityArray(a, b)
			if d.Empty() {
				return nil
			}
			return mergeop.EnterIdentityArray{Diff: d}
		}
		d := DiffPositionArray(a, b)
		if d.Empty() {
			return nil
		}
		return mergeop.EnterPositionArray{Diff: d}
	}
	return nil
}

// DiffObject compares the fields of a and b. Entries follow a's field
// order, then the fields only b has.
func DiffObject(a, b *ir.Node) *mergeop.ObjectDiff {
	res := mergeop.NewObjectDiff()
	for i, f := range a.Fields {
		if op := DiffValue(a.Values[i], b.Get(f)); op != nil {
			res.Put(f, op)
		}
	}
	for i, f := range b.Fields {
		if a.Has(f) {
			continue
		}
		res.Put(f, mergeop.Set{Value: b.Values[i]})
	}
	if debug.Diff() && !res.Empty() {
		debug.Logf("diff object %v -> %v: %d entries\n", a, b, res.Len())
	}
	return res
}

// DiffPositionArray compares a and b index by index, with no alignment:
// an insertion shows up as changes to every later index.
func DiffPositionArray(a, b *ir.Node) *mergeop.PositionDiff {
	res := mergeop.NewPositionDiff()
	for i := range max(a.Len(), b.Len()) {
		if op := DiffValue(a.Index(i), b.Index(i)); op != nil {
			res.Put(i, op)
		}
	}
	return res
}

// DiffIdentityArray compares elements of a and b with the same identity.
// Entries follow a's order, then the identities only b has. Order changes
// alone produce no entries.
func DiffIdentityArray(a, b *ir.Node) *mergeop.IdentityDiff {
	res := mergeop.NewIdentityDiff()
	for _, v := range a.Values {
		k, _ := IdentityOf(v)
		if _, ok := res.Get(k); ok {
			continue
		}
		if op := DiffValue(FindByIdentity(a.Values, k), FindByIdentity(b.Values, k)); op != nil {
			res.Put(k, op)
		}
	}
	for _, v := range b.Values {
		k, _ := IdentityOf(v)
		if IndexOfIdentity(a.Values, k) != -1 {
			continue
		}
		if _, ok := res.Get(k); ok {
			continue
		}
		res.Put(k, mergeop.Set{Value: FindByIdentity(b.Values, k)})
	}
	return res
}
