package art

import "github.com/flier/artindex/internal/debug"

// node16 holds up to 16 children in parallel sorted arrays. The source
// design searches these with a 16-wide SIMD byte-equality probe; this port
// uses the portable scalar-scan fallback the spec explicitly permits (see
// DESIGN.md), since the externally observable behavior is identical and
// only throughput differs.
type node16 struct {
	p        prefix
	n        uint8
	keys     [node16Max]byte
	children [node16Max]node
}

var _ node = (*node16)(nil)

func (n *node16) kind() Kind       { return KindNode16 }
func (n *node16) prefix() *prefix  { return &n.p }
func (n *node16) numChildren() int { return int(n.n) }
func (n *node16) isFull() bool     { return int(n.n) >= node16Max }
func (n *node16) isMinSize() bool  { return int(n.n) <= node16Min }
func (n *node16) size() int        { return int(sizeofNode16) }

func (n *node16) findChild(b byte) (*node, bool) {
	for i := 0; i < int(n.n); i++ {
		if n.keys[i] == b {
			return &n.children[i], true
		}
	}
	return nil, false
}

// addChild inserts child under byte b, maintaining sort order.
//
// Precondition: !n.isFull() and b is not already present.
func (n *node16) addChild(b byte, child node) {
	debug.Assert(!n.isFull(), "node16.addChild: node is full")

	i := 0
	for i < int(n.n) && n.keys[i] < b {
		i++
	}

	copy(n.keys[i+1:n.n+1], n.keys[i:n.n])
	copy(n.children[i+1:n.n+1], n.children[i:n.n])

	n.keys[i] = b
	n.children[i] = child
	n.n++
}

// removeChild removes the child stored under byte b, compacting the arrays.
//
// Precondition: b is present.
func (n *node16) removeChild(b byte) {
	i := 0
	for i < int(n.n) && n.keys[i] != b {
		i++
	}
	debug.Assert(i < int(n.n), "node16.removeChild: byte %#x absent", b)

	copy(n.keys[i:], n.keys[i+1:n.n])
	copy(n.children[i:], n.children[i+1:n.n])
	n.children[n.n-1] = nil
	n.n--
}

// newNode48FromNode16 converts a full node16 into an equivalent node48,
// ready to receive one more child via addChild.
func newNode48FromNode16(ps *pools, n *node16) *node48 {
	out := ps.newNode48()
	out.p = n.p
	for i := range out.index {
		out.index[i] = node48Empty
	}
	for i := 0; i < int(n.n); i++ {
		out.children[i] = n.children[i]
		out.index[n.keys[i]] = uint8(i)
	}
	out.n = n.n
	return out
}

// newNode16FromNode48 demotes a node48 at minimum size (17 children, about
// to drop to 16) into a node16 holding all children but childToDrop. Walking
// the 256-byte index in byte order yields an already-sorted keys array.
func newNode16FromNode48(ps *pools, n *node48, childToDrop byte) *node16 {
	out := ps.newNode16()
	out.p = n.p
	for b := 0; b < 256; b++ {
		slot := n.index[byte(b)]
		if slot == node48Empty || byte(b) == childToDrop {
			continue
		}
		out.keys[out.n] = byte(b)
		out.children[out.n] = n.children[slot]
		out.n++
	}
	debug.Assert(int(out.n) == node16Max, "newNode16FromNode48: expected %d children, got %d", node16Max, out.n)
	return out
}
