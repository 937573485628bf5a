package app

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/chunkcursor/internal/engine/cursor"
)

// Direction is the way a chunk was reached.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "bwd"
	}
	return "fwd"
}

// ChunkStat describes one visited chunk.
type ChunkStat struct {
	Dir   Direction
	Index int
	Bytes int
	Runes int
	// Graphemes is -1 when the cursor may split runes across chunks,
	// since a per-chunk count would then be meaningless.
	Graphemes int
}

func statOf(chunk []byte, dir Direction, index int, utf8Aware bool) ChunkStat {
	st := ChunkStat{
		Dir:       dir,
		Index:     index,
		Bytes:     len(chunk),
		Runes:     utf8.RuneCount(chunk),
		Graphemes: -1,
	}
	if utf8Aware {
		st.Graphemes = uniseg.GraphemeClusterCount(string(chunk))
	}
	return st
}

// Walk reports the current chunk of c and every chunk after it. With
// reverse set it then backtracks to the first chunk, reporting each one
// again. It returns the number of successful advances and backtracks.
func Walk[C cursor.Cursor](c C, reverse bool, visit func(ChunkStat)) (advanced, backtracked int) {
	aware := c.UTF8Aware()
	index := 0
	visit(statOf(c.Chunk(), Forward, index, aware))

	for c.Advance() {
		advanced++
		index++
		visit(statOf(c.Chunk(), Forward, index, aware))
	}
	if !reverse {
		return advanced, 0
	}

	for c.Backtrack() {
		backtracked++
		index--
		visit(statOf(c.Chunk(), Backward, index, aware))
	}
	return advanced, backtracked
}
