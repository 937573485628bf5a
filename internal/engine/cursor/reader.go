package cursor

import "io"

// Reader reads the bytes of a cursor from its current chunk onwards.
// It drives the cursor forward with Advance.
type Reader[C Cursor] struct {
	c    C
	off  int
	done bool
}

// NewReader returns a Reader positioned at the start of c's current chunk.
func NewReader[C Cursor](c C) *Reader[C] {
	return &Reader[C]{c: c}
}

// Read implements io.Reader.
func (r *Reader[C]) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && !r.done {
		chunk := r.c.Chunk()
		if r.off < len(chunk) {
			m := copy(p[n:], chunk[r.off:])
			r.off += m
			n += m
			continue
		}
		if !r.c.Advance() {
			r.done = true
			break
		}
		r.off = 0
	}
	if n == 0 && len(p) > 0 && r.done {
		return 0, io.EOF
	}
	return n, nil
}

// WriteTo implements io.WriterTo, writing each remaining chunk in turn.
func (r *Reader[C]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for !r.done {
		chunk := r.c.Chunk()
		if r.off < len(chunk) {
			n, err := w.Write(chunk[r.off:])
			r.off += n
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		if !r.c.Advance() {
			r.done = true
			break
		}
		r.off = 0
	}
	return total, nil
}
