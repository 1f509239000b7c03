package art

import "github.com/flier/artindex/internal/debug"

// node256 indexes children directly by byte; it is the terminal node kind
// and never promotes further.
//
// n is a plain int rather than a byte: the source design's 8-bit counter
// wraps at 256, forcing a choice between a wider counter or an explicit
// is_full/is_min_size query distinguishing 0 from 256. This port takes the
// wider-counter option (see DESIGN.md).
type node256 struct {
	p        prefix
	n        int
	children [node256Max]node
}

var _ node = (*node256)(nil)

func (n *node256) kind() Kind       { return KindNode256 }
func (n *node256) prefix() *prefix  { return &n.p }
func (n *node256) numChildren() int { return n.n }
func (n *node256) isFull() bool     { return n.n >= node256Max }
func (n *node256) isMinSize() bool  { return n.n <= node256Min }
func (n *node256) size() int        { return int(sizeofNode256) }

func (n *node256) findChild(b byte) (*node, bool) {
	if n.children[b] == nil {
		return nil, false
	}
	return &n.children[b], true
}

// addChild installs child under byte b directly.
//
// Precondition: b is not already present. node256 has a slot for every byte
// value, so callers never need to grow it first: isFull reports true only
// when all 256 slots are taken, when no byte can be absent.
func (n *node256) addChild(b byte, child node) {
	debug.Assert(n.children[b] == nil, "node256.addChild: byte %#x already present", b)

	n.children[b] = child
	n.n++
}

// removeChild removes the child stored under byte b.
//
// Precondition: b is present.
func (n *node256) removeChild(b byte) {
	debug.Assert(n.children[b] != nil, "node256.removeChild: byte %#x absent", b)

	n.children[b] = nil
	n.n--
}
