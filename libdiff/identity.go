package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/jmerge/ir"
)

var ErrIdentityCollision = errors.New("identity collision")

// ArrayKind says how two arrays are compared.
type ArrayKind int

const (
	// Positional arrays are compared index by index.
	Positional ArrayKind = iota
	// Identity arrays are compared element by element identity.
	Identity
)

func (k ArrayKind) String() string {
	switch k {
	case Identity:
		return "identity"
	case Positional:
		return "positional"
	default:
		return "<unknown array kind>"
	}
}

// IdentityOf returns the identity of an array element. A string is its
// own identity. An object is identified by the first of its fields named in
// ir.IdentityFields. Anything else has no identity.
func IdentityOf(v *ir.Node) (ir.IdentityKey, bool) {
	if v == nil {
		return ir.IdentityKey{}, false
	}
	switch v.Type {
	case ir.StringType:
		return ir.KeyOf(v), true
	case ir.ObjectType:
		for _, f := range ir.IdentityFields {
			if id := v.Get(f); id != nil {
				return ir.KeyOf(id), true
			}
		}
	}
	return ir.IdentityKey{}, false
}

// Classify decides how a and b are compared. They are Identity arrays
// when every element of both has an identity, which includes two empty
// arrays.
func Classify(a, b []*ir.Node) ArrayKind {
	for _, list := range [][]*ir.Node{a, b} {
		for _, v := range list {
			if _, ok := IdentityOf(v); !ok {
				return Positional
			}
		}
	}
	return Identity
}

// FindByIdentity returns the first element of list with identity key, or
// nil.
func FindByIdentity(list []*ir.Node, key ir.IdentityKey) *ir.Node {
	i := IndexOfIdentity(list, key)
	if i == -1 {
		return nil
	}
	return list[i]
}

// IndexOfIdentity returns the index of the first element of list with
// identity key, or -1. Nil entries never match.
func IndexOfIdentity(list []*ir.Node, key ir.IdentityKey) int {
	for i, v := range list {
		if v == nil {
			continue
		}
		if k, ok := IdentityOf(v); ok && k == key {
			return i
		}
	}
	return -1
}

type IdentityCollisionError struct {
	Path   string
	Key    ir.IdentityKey
	First  int
	Second int
}

func (e *IdentityCollisionError) Error() string {
	return fmt.Sprintf("%s at %s: elements %d and %d share identity %q",
		ErrIdentityCollision, ir.DisplayPath(e.Path), e.First, e.Second, e.Key.Text)
}

func (e *IdentityCollisionError) Unwrap() error {
	return ErrIdentityCollision
}

// CheckIdentities reports the first identity array in doc with two
// elements sharing an identity. Diff and apply match the first such
// element and ignore the rest.
func CheckIdentities(doc *ir.Node) error {
	return checkIdentities("", doc)
}

func checkIdentities(path string, y *ir.Node) error {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.ObjectType:
		for i, f := range y.Fields {
			if err := checkIdentities(ir.FieldPath(path, f), y.Values[i]); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		if Classify(y.Values, nil) == Identity {
			seen := make(map[ir.IdentityKey]int, len(y.Values))
			for i, v := range y.Values {
				k, _ := IdentityOf(v)
				if j, ok := seen[k]; ok {
					return &IdentityCollisionError{Path: path, Key: k, First: j, Second: i}
				}
				seen[k] = i
			}
		}
		for i, v := range y.Values {
			if err := checkIdentities(ir.IndexPath(path, i), v); err != nil {
				return err
			}
		}
	}
	return nil
}
