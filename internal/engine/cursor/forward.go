package cursor

// BytesIter is a forward-only cursor over raw byte chunks, such as buffers
// read off a network connection. Chunk boundaries may fall inside a UTF-8
// sequence, so it is not UTF-8 aware.
type BytesIter struct {
	next    func() ([]byte, bool)
	current []byte
	done    bool
}

// NewBytesIter returns a cursor over the chunks produced by next, which
// reports false once it has no more chunks. The first chunk is pulled
// immediately and becomes the current chunk even if it is empty.
func NewBytesIter(next func() ([]byte, bool)) *BytesIter {
	it := &BytesIter{next: next}
	it.current, it.done = pullFirst(next)
	return it
}

// BytesOf returns a BytesIter over a fixed list of chunks.
func BytesOf(chunks ...[]byte) *BytesIter {
	return NewBytesIter(sliceSource(chunks))
}

func (it *BytesIter) Chunk() []byte   { return it.current }
func (it *BytesIter) UTF8Aware() bool { return false }

// Advance pulls chunks until it finds a non-empty one.
func (it *BytesIter) Advance() bool {
	c, ok := pullNonEmpty(it.next, &it.done)
	if ok {
		it.current = c
	}
	return ok
}

// Backtrack always returns false.
func (it *BytesIter) Backtrack() bool { return false }

// TextIter is a forward-only cursor over text chunks whose boundaries never
// split a rune.
type TextIter struct {
	next    func() (string, bool)
	current []byte
	done    bool
}

// NewTextIter returns a cursor over the chunks produced by next, which
// reports false once it has no more chunks. The first chunk is pulled
// immediately and becomes the current chunk even if it is empty.
func NewTextIter(next func() (string, bool)) *TextIter {
	it := &TextIter{next: next}
	first, done := pullFirst(next)
	it.current, it.done = bytesOf(first), done
	return it
}

// TextOf returns a TextIter over a fixed list of chunks.
func TextOf(chunks ...string) *TextIter {
	return NewTextIter(sliceSource(chunks))
}

func (it *TextIter) Chunk() []byte   { return it.current }
func (it *TextIter) UTF8Aware() bool { return true }

// Advance pulls chunks until it finds a non-empty one.
func (it *TextIter) Advance() bool {
	c, ok := pullNonEmpty(it.next, &it.done)
	if ok {
		it.current = bytesOf(c)
	}
	return ok
}

// Backtrack always returns false.
func (it *TextIter) Backtrack() bool { return false }

func pullFirst[T []byte | string](next func() (T, bool)) (T, bool) {
	c, ok := next()
	return c, !ok
}

// pullNonEmpty skips empty chunks. Once the source reports exhaustion it is
// never called again.
func pullNonEmpty[T []byte | string](next func() (T, bool), done *bool) (T, bool) {
	var zero T
	for !*done {
		c, ok := next()
		if !ok {
			*done = true
			break
		}
		if len(c) > 0 {
			return c, true
		}
	}
	return zero, false
}

func sliceSource[T any](items []T) func() (T, bool) {
	i := 0
	return func() (T, bool) {
		var zero T
		if i >= len(items) {
			return zero, false
		}
		i++
		return items[i-1], true
	}
}
