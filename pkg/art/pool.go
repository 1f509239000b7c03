package art

import "unsafe"

// poolChunkBytes is the target size of each backing chunk requested from
// the system allocator, per §4.7's "roughly 2 MiB" pool chunks.
const poolChunkBytes = 2 << 20

// pool is a slab allocator serving fixed-size blocks of one internal-node
// kind. It is grounded in the teacher's arena/recycle pool design —
// chunked backing allocation with free-list recycling of released blocks —
// reimplemented without that design's unsafe pointer-tagging machinery,
// which this port could not confirm compiles against its own internal
// layout helpers in the retrieved snapshot (see DESIGN.md).
//
// Block addresses are stable for the life of the node, and a released block
// is returned to the same pool it was allocated from, which is all the spec
// requires of pool behavior; the pool discipline itself is not observable.
type pool[T any] struct {
	chunkLen int
	free     []*T
}

func newPool[T any]() *pool[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}

	n := poolChunkBytes / size
	if n < 1 {
		n = 1
	}

	return &pool[T]{chunkLen: n}
}

// alloc returns a zeroed *T, drawing from the free list before growing the
// pool with a fresh chunk.
func (p *pool[T]) alloc() *T {
	if len(p.free) == 0 {
		chunk := make([]T, p.chunkLen)
		for i := range chunk {
			p.free = append(p.free, &chunk[i])
		}
	}

	last := len(p.free) - 1
	v := p.free[last]
	p.free[last] = nil
	p.free = p.free[:last]

	return v
}

// release returns v to the pool's free list for reuse, zeroing it first so
// a future alloc never observes stale pointers.
func (p *pool[T]) release(v *T) {
	var zero T
	*v = zero
	p.free = append(p.free, v)
}

// pools bundles one pool per internal-node kind, as required by §4.7: "one
// pool per internal-node kind".
type pools struct {
	node4   *pool[node4]
	node16  *pool[node16]
	node48  *pool[node48]
	node256 *pool[node256]
}

func newPools() *pools {
	return &pools{
		node4:   newPool[node4](),
		node16:  newPool[node16](),
		node48:  newPool[node48](),
		node256: newPool[node256](),
	}
}

func (ps *pools) newNode4() *node4     { return ps.node4.alloc() }
func (ps *pools) newNode16() *node16   { return ps.node16.alloc() }
func (ps *pools) newNode48() *node48   { return ps.node48.alloc() }
func (ps *pools) newNode256() *node256 { return ps.node256.alloc() }

// free returns an internal node's storage to the pool matching its kind.
func (ps *pools) free(n node) {
	switch v := n.(type) {
	case *node4:
		ps.node4.release(v)
	case *node16:
		ps.node16.release(v)
	case *node48:
		ps.node48.release(v)
	case *node256:
		ps.node256.release(v)
	}
}
