package cursor

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/chunkcursor/internal/engine/rope"
)

// sliceChunks is a Bidirectional over a fixed chunk list. pos is the gap
// index, in [0, len(chunks)].
type sliceChunks struct {
	chunks []string
	pos    int
}

func (s *sliceChunks) Next() (string, bool) {
	if s.pos >= len(s.chunks) {
		return "", false
	}
	s.pos++
	return s.chunks[s.pos-1], true
}

func (s *sliceChunks) Prev() (string, bool) {
	if s.pos == 0 {
		return "", false
	}
	s.pos--
	return s.chunks[s.pos], true
}

func ropeOf(chunks ...string) rope.Rope {
	cs := make([]rope.Chunk, len(chunks))
	for i, c := range chunks {
		cs[i] = rope.NewChunk(c)
	}
	return rope.FromChunks(cs)
}

func TestRopeCursorRoundTrip(t *testing.T) {
	c := NewRope(ropeOf("c0", "c1", "c2").Chunks())
	require.Equal(t, "c0", string(c.Chunk()))

	require.True(t, c.Advance())
	require.True(t, c.Backtrack())
	assert.Equal(t, "c0", string(c.Chunk()))

	require.True(t, c.Advance())
	require.True(t, c.Advance())
	assert.Equal(t, "c2", string(c.Chunk()))
	require.True(t, c.Backtrack())
	assert.Equal(t, "c1", string(c.Chunk()))
	require.True(t, c.Backtrack())
	assert.Equal(t, "c0", string(c.Chunk()))
}

func TestRopeCursorEmptySource(t *testing.T) {
	for name, src := range map[string]Bidirectional{
		"rope":  rope.New().Chunks(),
		"slice": &sliceChunks{},
	} {
		t.Run(name, func(t *testing.T) {
			c := NewRope(src)
			assert.Empty(t, c.Chunk())
			assert.False(t, c.Advance())
			assert.False(t, c.Backtrack())
			assert.False(t, c.Advance())
		})
	}
}

func TestRopeCursorBacktrackFromStartFails(t *testing.T) {
	c := NewRope(ropeOf("a", "b", "c").Chunks())

	assert.False(t, c.Backtrack())
	assert.False(t, c.Backtrack())
	assert.Equal(t, "a", string(c.Chunk()))

	require.True(t, c.Advance())
	assert.Equal(t, "b", string(c.Chunk()))
}

func TestRopeCursorSkipsEmptyChunks(t *testing.T) {
	c := NewRope(ropeOf("", "ab", "", "", "cd", "").Chunks())
	assert.Empty(t, c.Chunk())

	require.True(t, c.Advance())
	assert.Equal(t, "ab", string(c.Chunk()))
	require.True(t, c.Advance())
	assert.Equal(t, "cd", string(c.Chunk()))
	assert.False(t, c.Advance())
	assert.False(t, c.Advance())

	require.True(t, c.Backtrack())
	assert.Equal(t, "ab", string(c.Chunk()))
	assert.False(t, c.Backtrack())
	assert.False(t, c.Backtrack())

	require.True(t, c.Advance())
	assert.Equal(t, "cd", string(c.Chunk()))
}

func TestRopeCursorPositionMarker(t *testing.T) {
	src := &sliceChunks{chunks: []string{"a", "b", "c"}}
	c := NewRope(src)
	assert.Equal(t, chunkEnd, c.pos)
	assert.Equal(t, 1, src.pos)

	require.True(t, c.Advance())
	assert.Equal(t, chunkEnd, c.pos)
	assert.Equal(t, 2, src.pos)

	require.True(t, c.Backtrack())
	assert.Equal(t, chunkStart, c.pos)
	assert.Equal(t, 0, src.pos)
	assert.Equal(t, "a", string(c.Chunk()))

	require.True(t, c.Advance())
	assert.Equal(t, chunkEnd, c.pos)
	assert.Equal(t, 2, src.pos)
	assert.Equal(t, "b", string(c.Chunk()))

	assert.Equal(t, "ChunkStart", chunkStart.String())
	assert.Equal(t, "ChunkEnd", chunkEnd.String())
}

func TestRopeCursorFailedStepRestoresIterator(t *testing.T) {
	src := &sliceChunks{chunks: []string{"x", "", "", "y", "", ""}}
	c := NewRope(src)

	require.True(t, c.Advance())
	assert.Equal(t, "y", string(c.Chunk()))
	assert.False(t, c.Advance())
	assert.Equal(t, 4, src.pos, "iterator should sit just after the current chunk")

	require.True(t, c.Backtrack())
	assert.Equal(t, "x", string(c.Chunk()))
	assert.False(t, c.Backtrack())
	assert.Equal(t, 0, src.pos, "iterator should sit just before the current chunk")

	require.True(t, c.Advance())
	assert.Equal(t, "y", string(c.Chunk()))
}

func TestRopeCursorUTF8Aware(t *testing.T) {
	assert.True(t, NewRope(rope.FromString("日本").Chunks()).UTF8Aware())
}

func TestRopeCursorLargeRope(t *testing.T) {
	text := strings.Repeat("the quick brown fox\n", 2000)
	r := rope.FromString(text).Insert(1234, "ü")
	c := NewRope(r.Chunks())

	var fwd []string
	for {
		fwd = append(fwd, string(c.Chunk()))
		if !c.Advance() {
			break
		}
	}
	assert.Equal(t, r.String(), strings.Join(fwd, ""))

	var back []string
	back = append(back, string(c.Chunk()))
	for c.Backtrack() {
		back = append(back, string(c.Chunk()))
	}
	require.Len(t, back, len(fwd))
	for i := range fwd {
		assert.Equal(t, fwd[i], back[len(back)-1-i])
	}
}

// TestRopeCursorMatchesModel drives a RopeCursor with random steps over
// random chunk lists and compares it with an index over the list.
func TestRopeCursorMatchesModel(t *testing.T) {
	f := func(parts []string, steps []bool) bool {
		c := NewRope(&sliceChunks{chunks: parts})
		cur := 0

		for _, forward := range steps {
			want := -1
			if forward {
				for j := cur + 1; j < len(parts); j++ {
					if parts[j] != "" {
						want = j
						break
					}
				}
			} else {
				for j := cur - 1; j >= 0; j-- {
					if parts[j] != "" {
						want = j
						break
					}
				}
			}

			var ok bool
			if forward {
				ok = c.Advance()
			} else {
				ok = c.Backtrack()
			}
			if ok != (want >= 0) {
				return false
			}
			if ok {
				cur = want
			}
			if len(parts) > 0 && string(c.Chunk()) != parts[cur] {
				return false
			}
		}
		return true
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
