package ir

import (
	"errors"

	"github.com/signadot/jmerge/format"
)

var (
	ErrParse       = errors.New("parse error")
	ErrBadFormat   = format.ErrBadFormat
	ErrUnsupported = errors.New("unsupported value")
)
