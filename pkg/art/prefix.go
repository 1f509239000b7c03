package art

import "github.com/flier/artindex/internal/debug"

// prefixCap is the capacity, in bytes, of the key prefix embedded in every
// internal node. Shared prefixes longer than this are represented by a chain
// of single-child internal nodes rather than a single wide one.
const prefixCap = 8

// prefix is the bounded key-prefix buffer embedded in every internal node,
// implementing path compression: it holds the next Len key bytes shared by
// every descendant of the node, starting at the node's depth in the tree.
type prefix struct {
	Len   uint8
	Bytes [prefixCap]byte
}

// sharedLength returns the number of leading prefix bytes that match k
// starting at depth, stopping at the first mismatch or at p.Len.
func (p *prefix) sharedLength(k key, depth int) int {
	n := int(p.Len)
	i := 0
	for i < n && depth+i < keyLen && p.Bytes[i] == k[depth+i] {
		i++
	}
	return i
}

// cut discards the first n bytes of the prefix, shifting the remainder down.
func (p *prefix) cut(n int) {
	debug.Assert(n > 0 && n <= int(p.Len), "prefix.cut: n=%d out of range [1,%d]", n, p.Len)

	copy(p.Bytes[:], p.Bytes[n:p.Len])
	p.Len -= uint8(n)
}

// prepend forms the concatenation other.Bytes ++ [sep] ++ p.Bytes in place.
//
// Precondition: other.Len + 1 + p.Len <= prefixCap. Violating it means the
// caller mismanaged path compression; it is a programmer bug, not a runtime
// failure.
func (p *prefix) prepend(other prefix, sep byte) {
	total := int(other.Len) + 1 + int(p.Len)
	debug.Assert(total <= prefixCap, "prefix.prepend: combined length %d exceeds capacity %d", total, prefixCap)

	var buf [prefixCap]byte
	copy(buf[:], other.Bytes[:other.Len])
	buf[other.Len] = sep
	copy(buf[other.Len+1:], p.Bytes[:p.Len])

	p.Bytes = buf
	p.Len = uint8(total)
}
