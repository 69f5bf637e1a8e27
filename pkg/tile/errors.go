package tile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned before any work starts when the image list is
	// empty or the container has no area.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidLayout is returned when a layout with no cells or an empty tile is composited.
	ErrInvalidLayout = errors.New("invalid layout")
)

// DecodeError reports a source image that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a composite that could not be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encoding %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
