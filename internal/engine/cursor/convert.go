package cursor

import (
	"fmt"

	"github.com/dshills/chunkcursor/internal/engine/rope"
)

// Source is implemented by types that know how to present themselves as a
// Cursor.
type Source interface {
	IntoCursor() Cursor
}

// Into converts src into a Cursor.
//
// A Cursor is returned unchanged. A Source converts itself. A rope.Rope, a
// *rope.ChunkIterator or any other Bidirectional is wrapped in a RopeCursor.
// A []byte or string becomes a single-chunk cursor. Anything else yields
// ErrUnsupportedSource.
func Into(src any) (Cursor, error) {
	switch s := src.(type) {
	case Cursor:
		return s, nil
	case Source:
		return s.IntoCursor(), nil
	case []byte:
		return Bytes(s), nil
	case string:
		return String(s), nil
	case rope.Rope:
		return NewRope(s.Chunks()), nil
	case Bidirectional:
		return NewRope(s), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
}
