package mage

import "errors"

var (
	// ErrInvalidFont indicates a font could not be baked, typically
	// because the requested cell size is degenerate.
	ErrInvalidFont = errors.New("mage: invalid font")
)
