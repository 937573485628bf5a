// Package app drives cursors over files for the chunkwalk command.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrNoInput indicates no files were given to walk.
	ErrNoInput = errors.New("no input files")

	// ErrUnknownSource indicates an unrecognised source kind.
	ErrUnknownSource = errors.New("unknown source kind")

	// ErrInvalidChunkSize indicates a non-positive read chunk size.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
)

// OperationError records which operation on which file failed.
type OperationError struct {
	Op     string // e.g. "open", "read", "write"
	Target string // file path
	Err    error
}

func (e *OperationError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
