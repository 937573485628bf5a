package app

import (
	"fmt"
	"io"

	"github.com/dshills/chunkcursor/internal/engine/cursor"
	"github.com/dshills/chunkcursor/internal/engine/rope"
)

// SourceKind selects the cursor variant used to walk a file.
type SourceKind string

const (
	// SourceRope loads the file into a rope and walks it both ways.
	SourceRope SourceKind = "rope"
	// SourceText walks rope chunks through a forward-only text cursor.
	SourceText SourceKind = "text"
	// SourceBytes walks raw fixed-size reads, as a network stream would arrive.
	SourceBytes SourceKind = "bytes"
	// SourceFlat reads the whole file into one buffer.
	SourceFlat SourceKind = "flat"
)

// ParseSourceKind validates a source kind name.
func ParseSourceKind(s string) (SourceKind, error) {
	switch k := SourceKind(s); k {
	case SourceRope, SourceText, SourceBytes, SourceFlat:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
}

// streamChunks hands out successive reads from r. Every read gets a fresh
// buffer so earlier chunks stay intact.
type streamChunks struct {
	r    io.Reader
	size int
	err  error
}

func (s *streamChunks) next() ([]byte, bool) {
	if s.err != nil {
		return nil, false
	}
	buf := make([]byte, s.size)
	n, err := s.r.Read(buf)
	s.err = err
	if n == 0 && err != nil {
		return nil, false
	}
	return buf[:n], true
}

// Err returns the first read error other than io.EOF.
func (s *streamChunks) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

func noError() error { return nil }

// newCursor builds the configured cursor over r. The returned function
// reports read errors that surface only while the cursor is driven.
func (a *Application) newCursor(r io.Reader) (cursor.Cursor, func() error, error) {
	switch a.source {
	case SourceBytes:
		s := &streamChunks{r: r, size: a.chunkSize}
		return cursor.NewBytesIter(s.next), s.Err, nil

	case SourceFlat:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, nil, err
		}
		c, err := cursor.Into(data)
		return c, noError, err

	case SourceText, SourceRope:
		rp, err := rope.FromReader(r)
		if err != nil {
			return nil, nil, err
		}
		if a.source == SourceText {
			return cursor.NewTextIter(rp.Chunks().Next), noError, nil
		}
		c, err := cursor.Into(rp)
		return c, noError, err
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSource, a.source)
}
