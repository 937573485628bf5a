package cursor

import "unsafe"

// Cursor is a traversal position over a chunked byte source.
type Cursor interface {
	// Chunk returns the current chunk. Repeated calls without an intervening
	// Advance or Backtrack return the same bytes.
	Chunk() []byte

	// UTF8Aware reports whether the source guarantees that no chunk boundary
	// splits a UTF-8 sequence. It never changes over a cursor's lifetime.
	UTF8Aware() bool

	// Advance moves to the next non-empty chunk. It returns false once the
	// source is exhausted and keeps returning false after that.
	Advance() bool

	// Backtrack moves to the previous non-empty chunk. It returns false if
	// the source cannot move backward or is already at its start.
	Backtrack() bool
}

// Ref forwards every call to a cursor it does not own. Generic code written
// against Cursor can drive a Ref and the caller keeps using the underlying
// cursor afterwards, at the position the generic code left it.
type Ref[C Cursor] struct {
	c *C
}

// Borrow returns a Ref to *c.
func Borrow[C Cursor](c *C) Ref[C] {
	return Ref[C]{c: c}
}

func (r Ref[C]) Chunk() []byte   { return (*r.c).Chunk() }
func (r Ref[C]) UTF8Aware() bool { return (*r.c).UTF8Aware() }
func (r Ref[C]) Advance() bool   { return (*r.c).Advance() }
func (r Ref[C]) Backtrack() bool { return (*r.c).Backtrack() }

// bytesOf views s as a byte slice without copying. The result must never be
// written to.
func bytesOf(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
