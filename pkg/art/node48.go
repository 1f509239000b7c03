package art

import "github.com/flier/artindex/internal/debug"

// node48Empty is the sentinel marking an absent entry in node48's 256-byte
// indirection table.
const node48Empty = 0xFF

// node48 keeps a 256-byte byte-to-slot indirection table alongside up to 48
// children, giving O(1) lookup at the cost of the indirection table's
// footprint.
type node48 struct {
	p        prefix
	n        uint8
	index    [256]uint8
	children [node48Max]node
}

var _ node = (*node48)(nil)

func (n *node48) kind() Kind       { return KindNode48 }
func (n *node48) prefix() *prefix  { return &n.p }
func (n *node48) numChildren() int { return int(n.n) }
func (n *node48) isFull() bool     { return int(n.n) >= node48Max }
func (n *node48) isMinSize() bool  { return int(n.n) <= node48Min }
func (n *node48) size() int        { return int(sizeofNode48) }

func (n *node48) findChild(b byte) (*node, bool) {
	slot := n.index[b]
	if slot == node48Empty {
		return nil, false
	}
	return &n.children[slot], true
}

// addChild inserts child under byte b, scanning for the first free slot in
// children (a linear probe bounded by 48).
//
// Precondition: !n.isFull() and b is not already present.
func (n *node48) addChild(b byte, child node) {
	debug.Assert(!n.isFull(), "node48.addChild: node is full")

	slot := 0
	for n.children[slot] != nil {
		slot++
	}

	n.children[slot] = child
	n.index[b] = uint8(slot)
	n.n++
}

// removeChild removes the child stored under byte b, freeing its slot and
// marking the byte empty in the index.
//
// Precondition: b is present.
func (n *node48) removeChild(b byte) {
	slot := n.index[b]
	debug.Assert(slot != node48Empty, "node48.removeChild: byte %#x absent", b)

	n.children[slot] = nil
	n.index[b] = node48Empty
	n.n--
}

// newNode256FromNode48 converts a full node48 into an equivalent node256,
// ready to receive one more child via addChild.
func newNode256FromNode48(ps *pools, n *node48) *node256 {
	out := ps.newNode256()
	out.p, out.n = n.p, int(n.n)
	for b := 0; b < 256; b++ {
		slot := n.index[byte(b)]
		if slot != node48Empty {
			out.children[b] = n.children[slot]
		}
	}
	return out
}

// newNode48FromNode256 demotes a node256 at minimum size (49 children, about
// to drop to 48) into a node48 holding all children but childToDrop.
func newNode48FromNode256(ps *pools, n *node256, childToDrop byte) *node48 {
	out := ps.newNode48()
	out.p = n.p
	for i := range out.index {
		out.index[i] = node48Empty
	}

	slot := 0
	for b := 0; b < 256; b++ {
		if byte(b) == childToDrop || n.children[b] == nil {
			continue
		}
		out.children[slot] = n.children[b]
		out.index[byte(b)] = uint8(slot)
		slot++
	}
	out.n = uint8(slot)
	debug.Assert(int(out.n) == node48Max, "newNode48FromNode256: expected %d children, got %d", node48Max, out.n)
	return out
}
