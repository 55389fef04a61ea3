package mergeop

import (
	"fmt"

	"github.com/signadot/jmerge/ir"
)

// Op is one edit in a diff tree. The variants are Remove, Set,
// EnterObject, EnterPositionArray and EnterIdentityArray; no other
// implementations exist.
type Op interface {
	Kind() Kind
	String() string
	op()
}

// Remove deletes the value at its key.
type Remove struct{}

// Set replaces the value at its key, or adds it.
type Set struct {
	Value *ir.Node
}

// EnterObject applies a nested diff to the object at its key.
type EnterObject struct {
	Diff *ObjectDiff
}

// EnterPositionArray applies a nested diff to the position array at its
// key.
type EnterPositionArray struct {
	Diff *PositionDiff
}

// EnterIdentityArray applies a nested diff to the identity array at its
// key.
type EnterIdentityArray struct {
	Diff *IdentityDiff
}

func (Remove) op()             {}
func (Set) op()                {}
func (EnterObject) op()        {}
func (EnterPositionArray) op() {}
func (EnterIdentityArray) op() {}

func (Remove) Kind() Kind             { return RemoveKind }
func (Set) Kind() Kind                { return SetKind }
func (EnterObject) Kind() Kind        { return EnterObjectKind }
func (EnterPositionArray) Kind() Kind { return EnterPositionArrayKind }
func (EnterIdentityArray) Kind() Kind { return EnterIdentityArrayKind }

func (Remove) String() string {
	return "remove"
}

func (o Set) String() string {
	d, err := o.Value.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("set <%v>", err)
	}
	return "set " + string(d)
}

func (o EnterObject) String() string {
	return fmt.Sprintf("enter object (%d)", o.Diff.Len())
}

func (o EnterPositionArray) String() string {
	return fmt.Sprintf("enter position array (%d)", o.Diff.Len())
}

func (o EnterIdentityArray) String() string {
	return fmt.Sprintf("enter identity array (%d)", o.Diff.Len())
}

// EqualOps reports whether a and b are the same edit. Set values compare
// with ir.Equal and nested diffs compare entry by entry in order.
func EqualOps(a, b Op) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case Remove:
		_, ok := b.(Remove)
		return ok
	case Set:
		y, ok := b.(Set)
		return ok && ir.Equal(x.Value, y.Value)
	case EnterObject:
		y, ok := b.(EnterObject)
		return ok && x.Diff.Equal(y.Diff)
	case EnterPositionArray:
		y, ok := b.(EnterPositionArray)
		return ok && x.Diff.Equal(y.Diff)
	case EnterIdentityArray:
		y, ok := b.(EnterIdentityArray)
		return ok && x.Diff.Equal(y.Diff)
	}
	return false
}
