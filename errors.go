package tag2html

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInternal wraps a panic recovered from a custom RenderFunc.
	ErrInternal = errors.New("internal conversion error")
)
