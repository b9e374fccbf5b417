package renderer

import "errors"

var (
	ErrNoTracers       = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined = errors.New("renderer: no scene defined")
	ErrEmptyScene      = errors.New("renderer: scene does not contain any objects")
)
