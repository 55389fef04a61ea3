// Package parse decodes YAML and JSON text into ir documents.
package parse

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jmerge/debug"
	"github.com/signadot/jmerge/format"
	"github.com/signadot/jmerge/ir"
)

// Parse decodes d into a node, keeping the order of object fields. Empty
// input yields a nil node.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	if pOpts.format.IsJSON() {
		res, err = parseJSON(d)
	} else {
		res, err = parseYAML(d)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s: %v\n", pOpts.format, res)
	}
	return res, nil
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromAny(v)
}

// ParseDocument is Parse for top level documents, which must be objects.
// Empty input yields an empty object.
func ParseDocument(d []byte, opts ...ParseOption) (*ir.Node, error) {
	res, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Type == ir.NullType {
		return ir.FromKeyVals(nil), nil
	}
	if res.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: got %s", ErrNotDocument, res.Type)
	}
	return res, nil
}

// FromAny converts decoded YAML or JSON values into a node.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			val, err := fromAnyValue(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: keyString(item.Key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, xv := range x {
			val, err := fromAnyValue(xv)
			if err != nil {
				return nil, err
			}
			m[k] = val
		}
		return ir.FromMap(m), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, xv := range x {
			val, err := fromAnyValue(xv)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: number %v", ir.ErrUnsupported, x)
		}
		return ir.FromNumber(x), nil
	case float32:
		return FromAny(float64(x))
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromNumber(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return ir.FromNumber(f), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ir.ErrUnsupported, v)
	}
}

// nested nulls are explicit values
func fromAnyValue(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	return FromAny(v)
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	case float64:
		// unquoted .inf and .nan keys
		switch {
		case math.IsNaN(x):
			return ".nan"
		case math.IsInf(x, 1):
			return ".inf"
		case math.IsInf(x, -1):
			return "-.inf"
		}
		return fmt.Sprint(x)
	default:
		return fmt.Sprint(x)
	}
}
