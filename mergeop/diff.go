package mergeop

import (
	"iter"
	"slices"

	"github.com/signadot/jmerge/ir"
)

// Diff maps keys to the edits made under them. Keys keep the order in
// which they were first put; unchanged keys have no entry.
type Diff[K comparable] struct {
	keys []K
	ops  map[K]Op
}

// ObjectDiff is keyed by object field name.
type ObjectDiff = Diff[string]

// PositionDiff is keyed by array index.
type PositionDiff = Diff[int]

// IdentityDiff is keyed by element identity.
type IdentityDiff = Diff[ir.IdentityKey]

func NewDiff[K comparable]() *Diff[K] {
	return &Diff[K]{ops: map[K]Op{}}
}

func NewObjectDiff() *ObjectDiff     { return NewDiff[string]() }
func NewPositionDiff() *PositionDiff { return NewDiff[int]() }
func NewIdentityDiff() *IdentityDiff { return NewDiff[ir.IdentityKey]() }

func (d *Diff[K]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

func (d *Diff[K]) Empty() bool {
	return d.Len() == 0
}

func (d *Diff[K]) Get(k K) (Op, bool) {
	if d == nil {
		return nil, false
	}
	o, ok := d.ops[k]
	return o, ok
}

// Put records o under k. An existing entry is replaced and keeps its
// position. Put returns d for chaining.
func (d *Diff[K]) Put(k K, o Op) *Diff[K] {
	if d.ops == nil {
		d.ops = map[K]Op{}
	}
	if _, ok := d.ops[k]; !ok {
		d.keys = append(d.keys, k)
	}
	d.ops[k] = o
	return d
}

func (d *Diff[K]) Keys() []K {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// All iterates the entries in key order.
func (d *Diff[K]) All() iter.Seq2[K, Op] {
	return func(yield func(K, Op) bool) {
		if d == nil {
			return
		}
		for _, k := range d.keys {
			if !yield(k, d.ops[k]) {
				return
			}
		}
	}
}

// Equal reports whether d and o hold equal edits under the same keys in
// the same order.
func (d *Diff[K]) Equal(o *Diff[K]) bool {
	if d.Len() != o.Len() {
		return false
	}
	for i, k := range d.Keys() {
		if o.keys[i] != k {
			return false
		}
		if !EqualOps(d.ops[k], o.ops[k]) {
			return false
		}
	}
	return true
}
