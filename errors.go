package dxfrender

import "errors"

var (
	// ErrNilScene is returned when Render is called without a scene.
	ErrNilScene = errors.New("dxfrender: nil scene")

	// ErrInvalidSurface is returned when the target surface has no usable
	// size.
	ErrInvalidSurface = errors.New("dxfrender: invalid surface size")
)
