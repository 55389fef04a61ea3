package jmerge

import (
	"fmt"

	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/libdiff"
	"github.com/signadot/jmerge/mergeop"
)

// Diff returns the edits turning document a into document b. Both must be
// objects.
func Diff(a, b *ir.Node) (*mergeop.ObjectDiff, error) {
	if err := checkDocument("from", a); err != nil {
		return nil, err
	}
	if err := checkDocument("to", b); err != nil {
		return nil, err
	}
	return libdiff.DiffObject(a, b), nil
}

func checkDocument(which string, y *ir.Node) error {
	if y == nil {
		return fmt.Errorf("%w: %s document is missing", ErrNotDocument, which)
	}
	if y.Type != ir.ObjectType {
		return fmt.Errorf("%w: %s document is %s", ErrNotDocument, which, y.Type)
	}
	return nil
}
