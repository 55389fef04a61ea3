package jmerge

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/mergeop"
	"github.com/signadot/jmerge/parse"
)

type patchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// JSONPatch renders d, a diff made against base, as an RFC 6902 JSON
// patch. Object fields map onto remove and add operations; an array that
// changed is replaced as a whole.
func JSONPatch(base *ir.Node, d *mergeop.ObjectDiff) ([]byte, error) {
	if err := checkDocument("base", base); err != nil {
		return nil, err
	}
	ops, err := objectPatch(nil, "", base, d)
	if err != nil {
		return nil, err
	}
	if ops == nil {
		ops = []patchOp{}
	}
	res, err := json.Marshal(ops)
	if err != nil {
		return nil, err
	}
	if _, err := jsonpatch.DecodePatch(res); err != nil {
		return nil, fmt.Errorf("error producing json patch: %w", err)
	}
	return res, nil
}

func objectPatch(res []patchOp, ptr string, base *ir.Node, d *mergeop.ObjectDiff) ([]patchOp, error) {
	for k, op := range d.All() {
		p := ptr + "/" + escapePointer(k)
		switch x := op.(type) {
		case mergeop.Remove:
			res = append(res, patchOp{Op: "remove", Path: p})
		case mergeop.Set:
			v, err := x.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			res = append(res, patchOp{Op: "add", Path: p, Value: v})
		case mergeop.EnterObject:
			var err error
			res, err = objectPatch(res, p, base.Get(k), x.Diff)
			if err != nil {
				return nil, err
			}
		case mergeop.EnterPositionArray, mergeop.EnterIdentityArray:
			tmp := ir.FromKeyVals([]ir.KeyVal{{Key: k, Val: base.Get(k).Clone()}})
			if err := Apply(mergeop.NewObjectDiff().Put(k, op), tmp); err != nil {
				return nil, err
			}
			v, err := tmp.Get(k).MarshalJSON()
			if err != nil {
				return nil, err
			}
			res = append(res, patchOp{Op: "replace", Path: p, Value: v})
		}
	}
	return res, nil
}

func escapePointer(k string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(k)
}

// ApplyJSONPatch applies an RFC 6902 patch to doc. The result's object
// fields are sorted.
func ApplyJSONPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out, parse.ParseJSON())
}

// ApplyMergePatch applies an RFC 7386 JSON merge patch to doc.
func ApplyMergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out, parse.ParseJSON())
}
