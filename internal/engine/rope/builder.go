package rope

import (
	"io"
	"strings"
)

// Builder provides efficient incremental construction of a rope.
// Writes may split a multi-byte rune; the builder holds back the
// incomplete tail until the rest of it arrives or Build is called.
type Builder struct {
	chunks   []Chunk
	buffer   strings.Builder
	totalLen int
}

// NewBuilder creates a new rope builder.
func NewBuilder() *Builder {
	return &Builder{
		chunks: make([]Chunk, 0, 64),
	}
}

// WriteString appends a string to the builder.
func (b *Builder) WriteString(s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}

	b.totalLen += len(s)
	b.buffer.WriteString(s)

	if b.buffer.Len() >= MaxChunkSize*2 {
		b.flush(false)
	}
	return len(s), nil
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	return b.WriteString(string(p))
}

// flush moves buffered text into chunks. Unless final is set, a trailing
// partial rune stays buffered so no chunk ends mid-sequence.
func (b *Builder) flush(final bool) {
	if b.buffer.Len() == 0 {
		return
	}

	s := b.buffer.String()
	var tail string
	if !final {
		cut := len(s) - incompleteSuffix(s)
		s, tail = s[:cut], s[cut:]
	}
	b.buffer.Reset()
	b.buffer.WriteString(tail)

	b.chunks = append(b.chunks, splitIntoChunks(s)...)
}

// Len returns the total number of bytes written.
func (b *Builder) Len() int {
	return b.totalLen
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.chunks = nil
	b.buffer.Reset()
	b.totalLen = 0
}

// Build creates the rope from accumulated data and resets the builder.
func (b *Builder) Build() Rope {
	b.flush(true)

	chunks := b.chunks
	b.Reset()
	if len(chunks) == 0 {
		return New()
	}
	return buildFromChunks(chunks)
}

// ReadFrom implements io.ReaderFrom.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024)
	var total int64

	for {
		n, err := r.Read(buf)
		if n > 0 {
			b.WriteString(string(buf[:n]))
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
