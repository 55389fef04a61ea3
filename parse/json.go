package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/jmerge/ir"
)

// parseJSON walks the token stream so that object fields keep their order
// and numbers are read as JSON numbers in any notation.
func parseJSON(d []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data at offset %d", ErrInvalidJSON, dec.InputOffset())
	}
	return res, nil
}

func decodeJSON(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return nil, fmt.Errorf("unexpected %q", x)
	case nil:
		return ir.Null(), nil
	default:
		return FromAny(x)
	}
}

func decodeJSONObject(dec *json.Decoder) (*ir.Node, error) {
	var kvs []ir.KeyVal
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}
		val, err := decodeJSON(dec)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ir.FromKeyVals(kvs), nil
}

func decodeJSONArray(dec *json.Decoder) (*ir.Node, error) {
	vals := []*ir.Node{}
	for dec.More() {
		val, err := decodeJSON(dec)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ir.FromSlice(vals), nil
}
