package art

import "github.com/flier/artindex/internal/debug"

// maxValueLen is the largest value length the encoding can represent: the
// 4-byte inline length field is an unsigned 32-bit integer. It is a var,
// not a const, solely so tests can shrink it temporarily rather than
// allocate a multi-gigabyte slice to exercise the boundary.
var maxValueLen = (1 << 32) - 1

// leafHeaderSize accounts for the one-byte kind tag plus the 8-byte encoded
// key and 4-byte value length that precede a leaf's inline value bytes in
// the source layout. Go's leaf struct does not pack these contiguously, but
// this constant is what memory accounting charges, since it is the
// observable, spec-mandated size rather than an artifact of Go's layout.
const leafHeaderSize = 1 + keyLen + 4

// leaf is a variable-size record holding an encoded key and its value.
// Leaves are immutable after creation and are allocated directly through
// the system allocator (not a node-kind pool), since their size varies with
// the value.
type leaf struct {
	key   key
	value []byte
}

var _ node = (*leaf)(nil)

// newLeaf validates v's length and constructs a leaf for k, v.
//
// It does not perform memory accounting; callers charge leafSize(len(v))
// against the tree's budget before calling this, per the rollback
// discipline described in [Tree.Insert].
func newLeaf(k key, v []byte) (*leaf, error) {
	if len(v) > maxValueLen {
		return nil, &ValueTooLongError{Len: len(v)}
	}

	value := make([]byte, len(v))
	copy(value, v)

	return &leaf{key: k, value: value}, nil
}

// leafSize computes the accounted size of a leaf holding a value of the
// given length.
func leafSize(valueLen int) int {
	return leafHeaderSize + valueLen
}

// matches reports whether this leaf's key equals k.
func (l *leaf) matches(k key) bool {
	return l.key == k
}

func (l *leaf) kind() Kind        { return KindLeaf }
func (l *leaf) prefix() *prefix   { return nil }
func (l *leaf) numChildren() int  { return 0 }
func (l *leaf) isFull() bool      { return true }
func (l *leaf) isMinSize() bool   { return false }
func (l *leaf) size() int         { return leafSize(len(l.value)) }

func (l *leaf) findChild(b byte) (*node, bool) {
	debug.Assert(false, "leaf has no children")
	return nil, false
}
