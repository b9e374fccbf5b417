package tracer

import "errors"

var (
	ErrNotSetup         = errors.New("tracer: scene, camera or frame buffer not defined")
	ErrFrameBufferSize  = errors.New("tracer: frame buffer does not match camera dimensions")
	ErrBlockOutOfBounds = errors.New("tracer: block exceeds frame height")
	ErrTracerClosed     = errors.New("tracer: tracer is closed")
)
