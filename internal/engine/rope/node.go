package rope

import "strings"

// Tree structure constants
const (
	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node is a node in the rope B+ tree.
// Leaf nodes (height == 0) hold chunks; internal nodes hold children.
type Node struct {
	height uint8
	bytes  ByteOffset // total bytes in the subtree

	children   []*Node
	childBytes []ByteOffset

	chunks []Chunk
}

func newLeafNode() *Node {
	return &Node{chunks: make([]Chunk, 0, MaxChunksPerLeaf)}
}

func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	for _, c := range chunks {
		n.bytes += ByteOffset(c.Len())
	}
	return n
}

func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}

	n := &Node{
		height:     children[0].height + 1,
		children:   children,
		childBytes: make([]ByteOffset, len(children)),
	}
	for i, child := range children {
		n.childBytes[i] = child.bytes
		n.bytes += child.bytes
	}
	return n
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Len returns the byte length of text in this subtree.
func (n *Node) Len() ByteOffset {
	return n.bytes
}

func (n *Node) chunkCount() int {
	if n.IsLeaf() {
		return len(n.chunks)
	}
	count := 0
	for _, child := range n.children {
		count += child.chunkCount()
	}
	return count
}

func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			sb.WriteString(chunk.String())
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// split returns two nodes holding [0, offset) and [offset, end).
func (n *Node) split(offset ByteOffset) (*Node, *Node) {
	if offset == 0 {
		return newLeafNode(), n
	}
	if offset >= n.bytes {
		return n, newLeafNode()
	}
	if n.IsLeaf() {
		return n.splitLeaf(offset)
	}
	return n.splitInternal(offset)
}

func (n *Node) splitLeaf(offset ByteOffset) (*Node, *Node) {
	var left, right []Chunk
	pos := ByteOffset(0)

	for _, chunk := range n.chunks {
		end := pos + ByteOffset(chunk.Len())
		switch {
		case end <= offset:
			left = append(left, chunk)
		case pos >= offset:
			right = append(right, chunk)
		default:
			l, r := chunk.Split(int(offset - pos))
			left = append(left, l)
			right = append(right, r)
		}
		pos = end
	}

	return newLeafNodeWithChunks(left), newLeafNodeWithChunks(right)
}

func (n *Node) splitInternal(offset ByteOffset) (*Node, *Node) {
	var left, right []*Node
	pos := ByteOffset(0)

	for i, child := range n.children {
		end := pos + n.childBytes[i]
		switch {
		case end <= offset:
			left = append(left, child)
		case pos >= offset:
			right = append(right, child)
		default:
			l, r := child.split(offset - pos)
			if l.bytes > 0 {
				left = append(left, l)
			}
			if r.bytes > 0 {
				right = append(right, r)
			}
		}
		pos = end
	}

	return buildNodeFromChildren(left), buildNodeFromChildren(right)
}

// buildNodeFromChildren creates a balanced tree over nodes of equal height.
// Children of differing height are first lifted to the tallest one.
func buildNodeFromChildren(children []*Node) *Node {
	switch len(children) {
	case 0:
		return newLeafNode()
	case 1:
		return children[0]
	}

	var height uint8
	for _, c := range children {
		height = max(height, c.height)
	}
	for i, c := range children {
		for c.height < height {
			c = newInternalNode([]*Node{c})
		}
		children[i] = c
	}

	if len(children) <= MaxChildren {
		return newInternalNode(children)
	}

	var parents []*Node
	for i := 0; i < len(children); i += MaxChildren {
		end := min(i+MaxChildren, len(children))
		group := make([]*Node, end-i)
		copy(group, children[i:end])
		parents = append(parents, newInternalNode(group))
	}
	return buildNodeFromChildren(parents)
}

func concat(left, right *Node) *Node {
	if left == nil || left.bytes == 0 {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.bytes == 0 {
		return left
	}

	for left.height < right.height {
		left = newInternalNode([]*Node{left})
	}
	for right.height < left.height {
		right = newInternalNode([]*Node{right})
	}

	if left.IsLeaf() {
		if len(left.chunks)+len(right.chunks) <= MaxChunksPerLeaf {
			chunks := make([]Chunk, 0, len(left.chunks)+len(right.chunks))
			chunks = append(chunks, left.chunks...)
			chunks = append(chunks, right.chunks...)
			return newLeafNodeWithChunks(chunks)
		}
		return newInternalNode([]*Node{left, right})
	}

	children := make([]*Node, 0, len(left.children)+len(right.children))
	children = append(children, left.children...)
	children = append(children, right.children...)
	return buildNodeFromChildren(children)
}
