package ir

import (
	"maps"
	"slices"
)

// Node is a document value. Type selects which of the remaining fields
// carry the value.
type Node struct {
	Type Type

	// Fields[i] is the key of Values[i] for objects; arrays only use Values.
	Fields []string
	Values []*Node

	String string
	Bool   bool
	Number float64
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	return y.CloneTo(&Node{})
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromNumber(f float64) *Node {
	return &Node{Type: NumberType, Number: f}
}

func FromInt(v int64) *Node {
	return FromNumber(float64(v))
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: ArrayType, Values: make([]*Node, len(ySlice))}
	copy(res.Values, ySlice)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs. A repeated key
// replaces the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object with sorted keys.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

func (y *Node) fieldIndex(field string) int {
	return slices.Index(y.Fields, field)
}

// Get returns the value of field, or nil when y is not an object or has no
// such field.
func (y *Node) Get(field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	i := y.fieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Has reports whether the object y carries field.
func (y *Node) Has(field string) bool {
	return y != nil && y.Type == ObjectType && y.fieldIndex(field) != -1
}

// Set assigns field in place when it exists and appends it otherwise.
func (y *Node) Set(field string, v *Node) {
	if i := y.fieldIndex(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Delete removes field, keeping the order of the remaining fields.
func (y *Node) Delete(field string) bool {
	i := y.fieldIndex(field)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

// Index returns the i'th element of an array, or nil when out of range.
func (y *Node) Index(i int) *Node {
	if y == nil || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	return len(y.Values)
}
