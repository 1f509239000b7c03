// Package art implements an in-memory Adaptive Radix Tree mapping 64-bit
// keys to variable-length opaque byte values, after Leis et al.
//
// The tree has five node kinds: a variable-size leaf, and four fixed-size
// internal node kinds (Node4, Node16, Node48, Node256) that grow and shrink
// in place as children are added and removed, trading memory for branching
// factor. Path compression is implemented by a bounded key prefix stored
// inline in every internal node.
//
// The engine is single-threaded; see [SafeTree] for a mutex-serialized
// wrapper suitable for sharing across goroutines.
package art

import "github.com/flier/artindex/internal/debug"

// Kind identifies a node's concrete layout. It is the analogue of the
// one-byte header every node in the source design carries at offset 0: Go's
// interface dispatch recovers the same information without a separate field
// read, which is one of the faithful dispatch strategies for this design.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindNode4
	KindNode16
	KindNode48
	KindNode256

	numKinds = int(KindNode256) + 1
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindNode4:
		return "node4"
	case KindNode16:
		return "node16"
	case KindNode48:
		return "node48"
	case KindNode256:
		return "node256"
	default:
		return "unknown"
	}
}

// Child-count brackets, by kind. Every mutation that would push a node's
// child count outside its bracket triggers promotion or demotion before
// the operation returns.
const (
	node4Min = 2
	node4Max = 4

	node16Min = 5
	node16Max = 16

	node48Min = 17
	node48Max = 48

	node256Min = 49
	node256Max = 256
)

// node is the common interface over the four internal-node kinds and the
// leaf. It is the abstraction that tree operations dispatch through;
// concrete types are *leaf, *node4, *node16, *node48, *node256.
//
// Leaf implements this interface with childless answers (nil prefix, zero
// children) and has no child-mutation methods, mirroring the source design's
// "a leaf has no children" invariant while keeping a single interface that
// tree code can switch over uniformly.
type node interface {
	// kind reports this node's concrete layout.
	kind() Kind

	// prefix returns a pointer to the node's key prefix. Leaves return nil.
	prefix() *prefix

	// numChildren reports how many children are currently present.
	// Leaves report 0.
	numChildren() int

	// findChild returns the child stored under byte b, or (nil, false) if
	// absent. Leaves return (nil, false), after failing an assertion in a
	// debug build.
	findChild(b byte) (*node, bool)

	// isFull reports whether the node is at its kind's maximum child count.
	isFull() bool

	// isMinSize reports whether the node is at its kind's minimum child
	// count, i.e. one more removal would underflow the bracket.
	isMinSize() bool

	// size returns the number of bytes this node occupies, for memory
	// accounting.
	size() int
}

// asInternal reports whether n is one of the four internal-node kinds; it
// reports false for a leaf.
func asInternal(n node) (ok bool) {
	switch n.kind() {
	case KindNode4, KindNode16, KindNode48, KindNode256:
		return true
	case KindLeaf:
		return false
	default:
		debug.Assert(false, "unreachable node kind %v", n.kind())
		return false
	}
}
