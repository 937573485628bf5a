package rope

// iterFrame is one step of the root-to-leaf path held by a ChunkIterator.
// For internal nodes idx is the child currently descended into; for the
// leaf it is the gap between chunks, in [0, len(chunks)].
type iterFrame struct {
	node *Node
	idx  int
}

// ChunkIterator walks the chunks of a rope in either direction.
//
// The iterator's position always lies between two chunks. Next returns the
// chunk after the position and moves past it; Prev returns the chunk before
// the position and moves before it. A Next immediately followed by a Prev
// therefore yields the same chunk twice. A failed call never moves the
// position.
type ChunkIterator struct {
	stack []iterFrame
}

// Chunks returns an iterator positioned before the first chunk.
func (r Rope) Chunks() *ChunkIterator {
	it := &ChunkIterator{stack: make([]iterFrame, 0, 8)}
	if r.root != nil {
		it.descend(r.root, true)
	}
	return it
}

// Next returns the chunk after the current position and advances past it.
// It returns false at the end of the rope.
func (it *ChunkIterator) Next() (string, bool) {
	for len(it.stack) > 0 {
		leaf := &it.stack[len(it.stack)-1]
		if leaf.idx < len(leaf.node.chunks) {
			c := leaf.node.chunks[leaf.idx]
			leaf.idx++
			return c.String(), true
		}
		if !it.stepLeaf(true) {
			break
		}
	}
	return "", false
}

// Prev returns the chunk before the current position and moves back over it.
// It returns false at the start of the rope.
func (it *ChunkIterator) Prev() (string, bool) {
	for len(it.stack) > 0 {
		leaf := &it.stack[len(it.stack)-1]
		if leaf.idx > 0 {
			leaf.idx--
			return leaf.node.chunks[leaf.idx].String(), true
		}
		if !it.stepLeaf(false) {
			break
		}
	}
	return "", false
}

// stepLeaf moves the path to the neighbouring leaf, landing at its first gap
// when moving forward and its last gap when moving back. The path is left
// untouched if there is no such leaf.
func (it *ChunkIterator) stepLeaf(forward bool) bool {
	for i := len(it.stack) - 2; i >= 0; i-- {
		f := &it.stack[i]
		next := f.idx - 1
		if forward {
			next = f.idx + 1
		}
		if next < 0 || next >= len(f.node.children) {
			continue
		}
		f.idx = next
		it.stack = it.stack[:i+1]
		it.descend(f.node.children[next], forward)
		return true
	}
	return false
}

// descend pushes frames from n down to its leftmost (or rightmost) leaf.
func (it *ChunkIterator) descend(n *Node, leftmost bool) {
	for {
		idx := 0
		if !leftmost {
			if n.IsLeaf() {
				idx = len(n.chunks)
			} else {
				idx = len(n.children) - 1
			}
		}
		it.stack = append(it.stack, iterFrame{node: n, idx: idx})
		if n.IsLeaf() {
			return
		}
		n = n.children[idx]
	}
}
