package ir

import (
	"strconv"
)

// IdentityFields are the object fields consulted, in order, for an
// element's identity. Case variants are distinct fields.
var IdentityFields = []string{"id", "Id", "ID"}

// IdentityKey is the comparable identity of an array element. Values of
// different types never share a key, so the string "1" and the number 1 are
// different identities.
type IdentityKey struct {
	Type Type
	Text string
}

func (k IdentityKey) String() string {
	return k.Text
}

// KeyOf canonicalises a value into an IdentityKey.
func KeyOf(v *Node) IdentityKey {
	switch v.Type {
	case StringType:
		return IdentityKey{Type: StringType, Text: v.String}
	case NumberType:
		return IdentityKey{Type: NumberType, Text: strconv.FormatFloat(v.Number, 'g', -1, 64)}
	case BoolType:
		return IdentityKey{Type: BoolType, Text: strconv.FormatBool(v.Bool)}
	case NullType:
		return IdentityKey{Type: NullType, Text: "null"}
	default:
		d, err := v.MarshalJSON()
		if err != nil {
			return IdentityKey{Type: v.Type, Text: err.Error()}
		}
		return IdentityKey{Type: v.Type, Text: string(d)}
	}
}
