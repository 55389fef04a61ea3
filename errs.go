package jmerge

import "errors"

var (
	ErrMissingParent = errors.New("missing parent")
	ErrNotDocument   = errors.New("not a document")
)
