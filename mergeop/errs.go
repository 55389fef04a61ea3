package mergeop

import "errors"

var ErrStructuralMismatch = errors.New("structural mismatch")
