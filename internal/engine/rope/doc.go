// Package rope provides an immutable rope of UTF-8 safe text chunks.
//
// A rope is a B+ tree where leaf nodes hold text chunks and internal nodes
// cache the byte length of each child. Ropes built through FromString,
// FromReader or Builder never split a UTF-8 sequence across a chunk
// boundary, which lets scanners treat every chunk as valid text on its own.
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")           // "hello, world"
//	r = r.Delete(0, 7)             // "world"
//
// Chunks are visited with a bidirectional iterator whose position always
// sits between two chunks:
//
//	it := r.Chunks()
//	for c, ok := it.Next(); ok; c, ok = it.Next() {
//		// forward
//	}
//	for c, ok := it.Prev(); ok; c, ok = it.Prev() {
//		// and back again
//	}
//
// Ropes are safe for concurrent reads. An iterator belongs to one goroutine.
package rope
