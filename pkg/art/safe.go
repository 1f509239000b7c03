package art

import (
	"sync"

	"github.com/flier/artindex/pkg/opt"
)

// SafeTree wraps a [Tree] with a mutex, serializing every entry point so the
// tree can be shared across goroutines. It is a correctness wrapper, not a
// concurrent data structure in its own right: Get takes the same mutex as
// the mutating operations, since the []byte a Get returns borrows tree
// storage that a concurrent Insert or Remove could otherwise invalidate.
type SafeTree struct {
	mu   sync.Mutex
	tree *Tree
}

// NewSafe constructs an empty, mutex-guarded tree.
func NewSafe(opts ...Option) *SafeTree {
	return &SafeTree{tree: New(opts...)}
}

func (s *SafeTree) Get(k uint64) opt.Option[[]byte] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Get(k)
}

func (s *SafeTree) Insert(k uint64, v []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(k, v)
}

func (s *SafeTree) Remove(k uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Remove(k)
}

func (s *SafeTree) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Clear()
}

func (s *SafeTree) CurrentMemoryUse() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.CurrentMemoryUse()
}

// Stats returns a snapshot-safe pointer to the underlying tree's counters:
// Stats' own fields are atomics, so callers may read them without holding
// s.mu, even while other goroutines mutate the tree through s.
func (s *SafeTree) Stats() *Stats {
	return s.tree.Stats()
}
