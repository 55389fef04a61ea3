package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/jmerge/format"
	"github.com/signadot/jmerge/ir"
)

// MustString returns the compact JSON encoding of node and panics if it
// cannot be encoded.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeFormat(format.JSONFormat), EncodeWire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
