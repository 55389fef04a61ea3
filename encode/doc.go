// Package encode writes ir documents and diffs as text.
//
// Documents are written as YAML by default or as JSON with
// EncodeFormat(format.JSONFormat); object field order is kept either way.
//
// Diffs are written one line per leaf edit:
//
//	name = "marian"
//	c.b = null
//	o.4 = {"id":4}
//	a[2] = 4
//
// A removal renders as null. Lines can be coloured with EncodeColors and
// filtered with EncodeWhere, which takes an expr-lang expression:
//
//	w, err := encode.CompileWhere(`op == "set" && under("metadata")`)
//	err = encode.EncodeDiff(d, os.Stdout, encode.EncodeWhere(w))
package encode
