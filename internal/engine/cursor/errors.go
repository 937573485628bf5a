package cursor

import "errors"

// Errors returned by cursor conversion.
var (
	// ErrUnsupportedSource indicates Into was given a value it cannot
	// traverse.
	ErrUnsupportedSource = errors.New("unsupported cursor source")
)
