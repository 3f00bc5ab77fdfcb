package trie

import (
	"errors"
	"fmt"
)

// ErrRender is matched by every error returned from Visualize.
var ErrRender = errors.New("trie: render failed")

// RenderError carries the write error that stopped a rendering.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %v", ErrRender, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrRender) match any RenderError.
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}
