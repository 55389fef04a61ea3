package jmerge

import (
	"bytes"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jmerge/encode"
	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseDocument([]byte(s))
	if err != nil {
		t.Fatalf("error parsing %q: %v", s, err)
	}
	return node
}

func yamlString(t *testing.T, node *ir.Node) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

// checkDoc fails the test with a character diff of the encodings when
// got is not equal to want.
func checkDoc(t *testing.T, want, got *ir.Node) {
	t.Helper()
	if ir.Equal(want, got) {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(yamlString(t, want), yamlString(t, got), false)
	t.Errorf("documents differ (-want +got):\n%s", dmp.DiffPrettyText(diffs))
}
