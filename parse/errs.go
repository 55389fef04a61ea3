package parse

import (
	"fmt"

	"github.com/signadot/jmerge/ir"
)

var (
	ErrParse       = ir.ErrParse
	ErrNotDocument = fmt.Errorf("%w: document is not an object", ErrParse)
	ErrInvalidJSON = fmt.Errorf("%w: invalid json", ErrParse)
)
