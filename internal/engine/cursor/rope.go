package cursor

// Bidirectional is a chunk source that can step both ways from a single
// position lying between two chunks, as rope.ChunkIterator does. Next
// returns the chunk after the position and moves past it; Prev returns the
// chunk before it and moves back. A call that returns false must not move
// the position.
type Bidirectional interface {
	Next() (string, bool)
	Prev() (string, bool)
}

// position records which side of the current chunk the underlying
// iterator sits on.
type position uint8

const (
	// chunkStart: the iterator is just before the current chunk.
	chunkStart position = iota
	// chunkEnd: the iterator is just after the current chunk.
	chunkEnd
)

func (p position) String() string {
	switch p {
	case chunkStart:
		return "ChunkStart"
	case chunkEnd:
		return "ChunkEnd"
	default:
		return "Unknown"
	}
}

// RopeCursor is a Cursor over a Bidirectional chunk source. Alternating
// Advance and Backtrack calls visit each non-empty chunk exactly once per
// direction change.
type RopeCursor struct {
	iter    Bidirectional
	current []byte
	pos     position
}

// NewRope returns a cursor whose current chunk is the first chunk pulled
// from iter. A source with no chunks yields one empty current chunk.
func NewRope(iter Bidirectional) *RopeCursor {
	first, _ := iter.Next()
	return &RopeCursor{
		iter:    iter,
		current: bytesOf(first),
		pos:     chunkEnd,
	}
}

func (c *RopeCursor) Chunk() []byte { return c.current }

// UTF8Aware is always true: rope chunks are cut on rune boundaries.
func (c *RopeCursor) UTF8Aware() bool { return true }

func (c *RopeCursor) Advance() bool {
	if c.pos == chunkStart {
		c.iter.Next()
		c.pos = chunkEnd
	}
	return c.step(c.iter.Next, c.iter.Prev)
}

func (c *RopeCursor) Backtrack() bool {
	if c.pos == chunkEnd {
		c.iter.Prev()
		c.pos = chunkStart
	}
	return c.step(c.iter.Prev, c.iter.Next)
}

// step moves with fwd until a non-empty chunk turns up. On failure the
// empty chunks it walked over are stepped back with rev, so the iterator is
// again adjacent to the current chunk.
func (c *RopeCursor) step(fwd, rev func() (string, bool)) bool {
	skipped := 0
	for {
		s, ok := fwd()
		if !ok {
			break
		}
		if len(s) > 0 {
			c.current = bytesOf(s)
			return true
		}
		skipped++
	}
	for ; skipped > 0; skipped-- {
		rev()
	}
	return false
}
