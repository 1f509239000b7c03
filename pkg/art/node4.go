package art

import "github.com/flier/artindex/internal/debug"

// node4 is the smallest internal-node kind: parallel sorted arrays of up to
// 4 keys and children, searched linearly.
type node4 struct {
	p        prefix
	n        uint8
	keys     [node4Max]byte
	children [node4Max]node
}

var _ node = (*node4)(nil)

func (n *node4) kind() Kind       { return KindNode4 }
func (n *node4) prefix() *prefix  { return &n.p }
func (n *node4) numChildren() int { return int(n.n) }
func (n *node4) isFull() bool     { return int(n.n) >= node4Max }
func (n *node4) isMinSize() bool  { return int(n.n) <= node4Min }
func (n *node4) size() int        { return int(sizeofNode4) }

func (n *node4) findChild(b byte) (*node, bool) {
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
func (n *node4) addChild(b byte, child node) {
	debug.Assert(!n.isFull(), "node4.addChild: node is full")

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
func (n *node4) removeChild(b byte) {
	i := 0
	for i < int(n.n) && n.keys[i] != b {
		i++
	}
	debug.Assert(i < int(n.n), "node4.removeChild: byte %#x absent", b)

	copy(n.keys[i:], n.keys[i+1:n.n])
	copy(n.children[i:], n.children[i+1:n.n])
	n.children[n.n-1] = nil
	n.n--
}

// newNode16FromNode4 converts a full node4 into an equivalent node16, ready to receive one
// more child via addChild.
func newNode16FromNode4(ps *pools, n *node4) *node16 {
	out := ps.newNode16()
	out.p, out.n = n.p, n.n
	copy(out.keys[:], n.keys[:n.n])
	copy(out.children[:], n.children[:n.n])
	return out
}

// newNode4FromNode16 demotes a node16 at minimum size (5 children, about to
// drop to 4) into a node4 holding all children but childToDrop.
func newNode4FromNode16(ps *pools, n *node16, childToDrop byte) *node4 {
	out := ps.newNode4()
	out.p = n.p
	for i := 0; i < int(n.n); i++ {
		if n.keys[i] == childToDrop {
			continue
		}
		out.keys[out.n] = n.keys[i]
		out.children[out.n] = n.children[i]
		out.n++
	}
	debug.Assert(int(out.n) == node4Max, "newNode4FromNode16: expected %d children, got %d", node4Max, out.n)
	return out
}
