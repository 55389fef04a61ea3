package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/token"

	"github.com/signadot/jmerge/format"
	"github.com/signadot/jmerge/ir"
)

type EncState struct {
	indent int
	format format.Format
	wire   bool
	colors *Colors
	where  *Where
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w as YAML, or as JSON with EncodeFormat, followed
// by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	var (
		d   []byte
		err error
	)
	if es.format.IsJSON() {
		d, err = encodeJSON(node, es)
	} else {
		d, err = encodeYAML(node, es)
	}
	if err != nil {
		return err
	}
	d = bytes.TrimRight(d, "\n")
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func encodeJSON(node *ir.Node, es *EncState) ([]byte, error) {
	d, err := node.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if es.wire {
		return d, nil
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", indentString(es.indent)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeYAML(node *ir.Node, es *EncState) ([]byte, error) {
	v, err := ToYAML(node)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	enc := yaml.NewEncoder(buf,
		yaml.Indent(es.indent),
		yaml.IndentSequence(true),
		yaml.Flow(es.wire),
	)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("error encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// ToYAML converts node into values go-yaml encodes in field order. Whole
// numbers become integers.
func ToYAML(node *ir.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		if !isYAMLString(node.String) {
			return yamlQuoted(node.String), nil
		}
		return node.String, nil
	case ir.NumberType:
		f := node.Number
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f), nil
		}
		return f, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			yv, err := ToYAML(v)
			if err != nil {
				return nil, err
			}
			res[i] = yv
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			yv, err := ToYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f, Value: yv}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: type %s", ir.ErrUnsupported, node.Type)
	}
}

// isYAMLString reports whether s reads back as a string when written
// without quotes.
func isYAMLString(s string) bool {
	return token.New(s, s, &token.Position{}).Type == token.StringType
}

// yamlQuoted is a string the encoder must double quote. go-yaml leaves
// .inf and .nan bare, which decode as floats.
type yamlQuoted string

func (s yamlQuoted) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(s))), nil
}

func indentString(n int) string {
	return string(bytes.Repeat([]byte{' '}, n))
}
