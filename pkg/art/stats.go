package art

import "sync/atomic"

// Stats holds the observability counters the spec requires: per-kind node
// totals, cumulative promotion/demotion events, and cumulative prefix
// splits. All counters are monotonically non-decreasing for the lifetime of
// the tree, except nodeCount which also decreases on demotion/removal.
//
// Counters are atomic so that Stats snapshots taken from a goroutine other
// than the one driving the tree (e.g. a metrics exporter polling
// [Tree.Stats]) never observe a torn value, even though the tree itself is
// single-threaded per entry point.
type Stats struct {
	nodeCount [numKinds]atomic.Uint64
	growing   [numKinds]atomic.Uint64
	shrinking [numKinds]atomic.Uint64
	splits    atomic.Uint64
}

// NodeCount returns the current number of live internal nodes of the given
// kind. Leaves are not counted: NodeCount(KindLeaf) is always 0.
func (s *Stats) NodeCount(kind Kind) uint64 { return s.nodeCount[kind].Load() }

// GrowingINodeCount returns the cumulative number of promotions that
// produced a node of the given kind.
func (s *Stats) GrowingINodeCount(kind Kind) uint64 { return s.growing[kind].Load() }

// ShrinkingINodeCount returns the cumulative number of demotions that
// consumed a node of the given kind.
func (s *Stats) ShrinkingINodeCount(kind Kind) uint64 { return s.shrinking[kind].Load() }

// KeyPrefixSplits returns the cumulative number of prefix splits performed
// by Insert.
func (s *Stats) KeyPrefixSplits() uint64 { return s.splits.Load() }

func (s *Stats) nodeCreated(kind Kind) { s.nodeCount[kind].Add(1) }
func (s *Stats) nodeDestroyed(kind Kind) {
	s.nodeCount[kind].Add(^uint64(0)) // -1
}

func (s *Stats) promoted(to Kind)  { s.growing[to].Add(1) }
func (s *Stats) demoted(from Kind) { s.shrinking[from].Add(1) }
func (s *Stats) splitPrefix()      { s.splits.Add(1) }

// resetLiveCounts zeroes the per-kind live node counts on Clear. Growth,
// shrink, and prefix-split counters are cumulative for the tree's lifetime
// and are not affected by Clear.
func (s *Stats) resetLiveCounts() {
	for i := range s.nodeCount {
		s.nodeCount[i].Store(0)
	}
}
