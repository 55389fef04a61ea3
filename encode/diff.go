package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/mergeop"
)

// Line is one leaf edit of a diff tree.
type Line struct {
	Path  string
	Depth int
	Kind  mergeop.Kind
	// Value is nil for removals.
	Value *ir.Node
}

// Op is "remove" or "set".
func (ln Line) Op() string {
	return ln.Kind.String()
}

// Text is the rendering of the line without colour, e.g. `c.d = 4`.
func (ln Line) Text() string {
	return ln.Path + " = " + ln.valueText()
}

func (ln Line) valueText() string {
	if ln.Kind == mergeop.RemoveKind {
		return "null"
	}
	return MustString(ln.Value)
}

// Lines flattens d depth first, in diff order. Object fields and
// identities are dot-joined to the path and array positions bracketed.
func Lines(d *mergeop.ObjectDiff) []Line {
	return appendLines(nil, "", 0, d, ir.FieldPath)
}

func appendLines[K comparable](res []Line, path string, depth int, d *mergeop.Diff[K], keyPath func(string, K) string) []Line {
	for k, op := range d.All() {
		p := keyPath(path, k)
		switch x := op.(type) {
		case mergeop.Remove:
			res = append(res, Line{Path: p, Depth: depth + 1, Kind: mergeop.RemoveKind})
		case mergeop.Set:
			res = append(res, Line{Path: p, Depth: depth + 1, Kind: mergeop.SetKind, Value: x.Value})
		case mergeop.EnterObject:
			res = appendLines(res, p, depth+1, x.Diff, ir.FieldPath)
		case mergeop.EnterPositionArray:
			res = appendLines(res, p, depth+1, x.Diff, ir.IndexPath)
		case mergeop.EnterIdentityArray:
			res = appendLines(res, p, depth+1, x.Diff, ir.KeyPath)
		}
	}
	return res
}

// EncodeDiff writes one line per leaf edit of d. In YAML format (the
// default) lines read `<path> = <value>`; in JSON format each line is an
// object with path, op and value.
func EncodeDiff(d *mergeop.ObjectDiff, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	for _, ln := range Lines(d) {
		if es.where != nil {
			ok, err := es.where.Match(ln)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		if err := encodeLine(ln, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeLine(ln Line, w io.Writer, es *EncState) error {
	if es.format.IsJSON() {
		jl := struct {
			Path  string          `json:"path"`
			Op    string          `json:"op"`
			Value json.RawMessage `json:"value,omitempty"`
		}{Path: ln.Path, Op: ln.Op()}
		if ln.Kind == mergeop.SetKind {
			jl.Value = json.RawMessage(MustString(ln.Value))
		}
		d, err := json.Marshal(jl)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n",
		es.colors.Color(ln.Kind, PathColor, ln.Path),
		es.colors.Color(ln.Kind, SepColor, "="),
		es.colors.Color(ln.Kind, ValueColor, ln.valueText()))
	return err
}

// EncodeHeader writes a section heading such as "# theirs".
func EncodeHeader(title string, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	_, err := fmt.Fprintln(w, es.colors.Color(mergeop.SetKind, HeaderColor, "# "+title))
	return err
}
