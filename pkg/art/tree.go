package art

import "github.com/flier/artindex/pkg/opt"

// Tree is an Adaptive Radix Tree mapping 64-bit keys to opaque byte-string
// values. The zero value is not usable; construct one with [New].
//
// A Tree is not safe for concurrent use. Operations are not reentrant and
// do not suspend. See [SafeTree] for a mutex-serialized wrapper suitable
// for sharing across goroutines, or build a reclaiming concurrent variant
// atop the same node layouts using optimistic lock coupling, per spec §5 —
// that variant is out of scope for this package.
type Tree struct {
	root node // nil means empty

	pools *pools
	stats Stats

	memory uint64
	limit  uint64 // 0 means unlimited
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithMemoryLimit sets a cap, in bytes, on current memory use. An Insert
// whose new leaf would push current_memory_use past limit fails with
// [OutOfMemoryError] instead of mutating the tree. The check counts only the
// new leaf's size: bytes charged for a node4 created or a node promoted by
// the same Insert are not checked against limit, so current_memory_use can
// exceed limit by those bytes. A limit of 0 (the default) means unlimited.
func WithMemoryLimit(limit uint64) Option {
	return func(t *Tree) { t.limit = limit }
}

// New constructs an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{pools: newPools()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get reads the value stored under k, if any. The returned view borrows the
// tree's storage and is valid until the next mutation of this tree.
func (t *Tree) Get(k uint64) opt.Option[[]byte] {
	ek := encode(k)

	n := t.root
	depth := 0

	for {
		if n == nil {
			return opt.None[[]byte]()
		}

		if lf, ok := n.(*leaf); ok {
			if lf.matches(ek) {
				return opt.Some(lf.value)
			}
			return opt.None[[]byte]()
		}

		p := n.prefix()
		if p.sharedLength(ek, depth) < int(p.Len) {
			return opt.None[[]byte]()
		}
		depth += int(p.Len)

		child, ok := n.findChild(ek[depth])
		if !ok {
			return opt.None[[]byte]()
		}

		n = *child
		depth++
	}
}

// Clear removes every entry from the tree. After Clear, Get returns None
// for every key and CurrentMemoryUse is 0.
func (t *Tree) Clear() {
	if t.root != nil {
		t.deleteSubtree(t.root)
		t.root = nil
	}
	t.memory = 0
	t.stats.resetLiveCounts()
}

// CurrentMemoryUse returns the running count of bytes charged to this
// tree's leaf payloads and internal-node blocks.
func (t *Tree) CurrentMemoryUse() uint64 { return t.memory }

// Stats returns the tree's observability counters.
func (t *Tree) Stats() *Stats { return &t.stats }

// deleteSubtree recursively frees every node under n, including n itself,
// decrementing live node counts as it goes. Memory accounting is reset in
// bulk by the caller (Clear), not incrementally here, since a full teardown
// always drives current_memory_use to exactly 0.
func (t *Tree) deleteSubtree(n node) {
	if n == nil {
		return
	}

	if !asInternal(n) {
		return
	}

	switch v := n.(type) {
	case *node4:
		for i := 0; i < int(v.n); i++ {
			t.deleteSubtree(v.children[i])
		}
		t.stats.nodeDestroyed(KindNode4)
		t.pools.free(v)
	case *node16:
		for i := 0; i < int(v.n); i++ {
			t.deleteSubtree(v.children[i])
		}
		t.stats.nodeDestroyed(KindNode16)
		t.pools.free(v)
	case *node48:
		for b := 0; b < 256; b++ {
			if v.index[byte(b)] != node48Empty {
				t.deleteSubtree(v.children[v.index[byte(b)]])
			}
		}
		t.stats.nodeDestroyed(KindNode48)
		t.pools.free(v)
	case *node256:
		for b := 0; b < 256; b++ {
			t.deleteSubtree(v.children[b])
		}
		t.stats.nodeDestroyed(KindNode256)
		t.pools.free(v)
	}
}
