// Package cursor lets byte scanners walk text that is stored either in one
// contiguous buffer or as a sequence of disjoint chunks.
//
// A Cursor exposes one chunk at a time. Scanners consume the bytes of the
// current chunk directly and only call Advance (or Backtrack, when scanning
// in reverse) at chunk boundaries:
//
//	c := cursor.NewRope(r.Chunks())
//	for {
//		for _, b := range c.Chunk() {
//			// scan b
//		}
//		if !c.Advance() {
//			break
//		}
//	}
//
// # Variants
//
//   - Bytes, String: a flat buffer presented as a single chunk.
//   - BytesIter: a forward-only source of raw byte chunks. Chunk boundaries
//     are arbitrary, so it is not UTF-8 aware.
//   - TextIter: a forward-only source of text chunks cut on rune boundaries.
//   - RopeCursor: a bidirectional chunk source such as a rope.ChunkIterator.
//
// Into converts any supported source into a Cursor, and Borrow wraps a
// pointer to a cursor so generic code can drive it without taking it over.
//
// # Aliasing
//
// The slice returned by Chunk is a borrowed view. It must not be modified,
// and it is only valid until the next Advance or Backtrack. Cursors never
// copy chunk data.
//
// # Concurrency
//
// A cursor is driven by one goroutine at a time. Independent traversals of
// the same source need independent cursors.
package cursor
