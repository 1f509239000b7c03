package art

// Insert stores v under k if k is not already present.
//
// It returns true if the key was inserted, false if k was already present
// (the tree is unchanged and v is discarded). It fails with
// [*ValueTooLongError] if len(v) exceeds the maximum encodable length, or
// [*OutOfMemoryError] if a configured memory limit would be exceeded; in
// both failure cases the tree is left exactly as it was.
func (t *Tree) Insert(k uint64, v []byte) (bool, error) {
	if len(v) > maxValueLen {
		return false, &ValueTooLongError{Len: len(v)}
	}

	charge := uint64(leafSize(len(v)))
	if t.limit > 0 && t.memory+charge > t.limit {
		return false, &OutOfMemoryError{Requested: int(charge), Limit: t.limit}
	}

	// Charge first, install second: if the leaf never ends up installed
	// (duplicate key), the charge is reversed below. This is the rollback
	// discipline the spec requires for partial-failure safety on insert.
	t.memory += charge

	lf, err := newLeaf(encode(k), v)
	if err != nil {
		t.memory -= charge
		return false, err
	}

	if !t.insertAt(&t.root, lf, 0) {
		t.memory -= charge
		return false, nil
	}

	return true, nil
}

// insertAt inserts lf into the subtree rooted at *ref, which is at depth
// depth in the tree. It returns false without mutating anything if lf's key
// is already present.
func (t *Tree) insertAt(ref *node, lf *leaf, depth int) bool {
	cur := *ref

	if cur == nil {
		*ref = lf
		return true
	}

	if old, ok := cur.(*leaf); ok {
		return t.insertIntoLeaf(ref, old, lf, depth)
	}

	return t.insertIntoNode(ref, lf, depth)
}

// insertIntoLeaf handles the case where *ref currently holds a leaf: either
// lf duplicates old's key, or the two leaves are split into a new node4.
func (t *Tree) insertIntoLeaf(ref *node, old *leaf, lf *leaf, depth int) bool {
	if old.matches(lf.key) {
		return false
	}

	shared := 0
	for depth+shared < keyLen && old.key[depth+shared] == lf.key[depth+shared] {
		shared++
	}

	nn := t.pools.newNode4()
	t.stats.nodeCreated(KindNode4)
	t.memory += uint64(sizeofNode4)

	nn.p.Len = uint8(shared)
	copy(nn.p.Bytes[:], old.key[depth:depth+shared])

	nn.addChild(old.key[depth+shared], old)
	nn.addChild(lf.key[depth+shared], lf)

	*ref = nn

	return true
}

// insertIntoNode handles the case where *ref currently holds an internal
// node: a prefix mismatch triggers a prefix split, a full match descends
// (promoting the node first if it is full and the child byte is absent).
func (t *Tree) insertIntoNode(ref *node, lf *leaf, depth int) bool {
	n := *ref
	p := n.prefix()

	shared := p.sharedLength(lf.key, depth)
	if shared < int(p.Len) {
		t.splitPrefix(ref, shared, lf, depth)
		return true
	}

	depth += int(p.Len)
	b := lf.key[depth]

	if child, ok := n.findChild(b); ok {
		return t.insertAt(child, lf, depth+1)
	}

	t.addChild(ref, b, lf)

	return true
}

// addChild installs child under byte b on the node at *ref, promoting it to
// the next larger kind first if it is full. This mirrors the teacher's
// AddChild dispatch: a type switch over the four internal-node kinds, since
// Go's interfaces cannot express "grow, then add" polymorphically without
// either an empty interface cast or a per-kind case.
func (t *Tree) addChild(ref *node, b byte, child node) {
	switch n := (*ref).(type) {
	case *node4:
		if n.numChildren() < node4Max {
			n.addChild(b, child)
			return
		}
		grown := newNode16FromNode4(t.pools, n)
		t.accountPromotion(KindNode4, KindNode16, n)
		grown.addChild(b, child)
		*ref = grown

	case *node16:
		if n.numChildren() < node16Max {
			n.addChild(b, child)
			return
		}
		grown := newNode48FromNode16(t.pools, n)
		t.accountPromotion(KindNode16, KindNode48, n)
		grown.addChild(b, child)
		*ref = grown

	case *node48:
		if n.numChildren() < node48Max {
			n.addChild(b, child)
			return
		}
		grown := newNode256FromNode48(t.pools, n)
		t.accountPromotion(KindNode48, KindNode256, n)
		grown.addChild(b, child)
		*ref = grown

	case *node256:
		n.addChild(b, child)
	}
}

// splitPrefix implements the prefix-split case of Insert: *ref's prefix
// only matches the key for the first `shared` bytes, so a new node4 is
// interposed above it holding those shared bytes, with *ref (truncated) and
// a new leaf as its two children.
func (t *Tree) splitPrefix(ref *node, shared int, lf *leaf, depth int) {
	n := *ref
	old := n.prefix()

	nn := t.pools.newNode4()
	t.stats.nodeCreated(KindNode4)
	t.stats.splitPrefix()
	t.memory += uint64(sizeofNode4)

	nn.p.Len = uint8(shared)
	copy(nn.p.Bytes[:], old.Bytes[:shared])

	divergingByte := old.Bytes[shared]
	old.cut(shared + 1)

	nn.addChild(divergingByte, n)
	nn.addChild(lf.key[depth+shared], lf)

	*ref = nn
}

// accountPromotion updates memory accounting and statistics for a
// promotion from 'from' to 'to', and returns the now-retired old node to
// its pool.
func (t *Tree) accountPromotion(from, to Kind, old node) {
	t.memory += uint64(sizeofKind(to)) - uint64(sizeofKind(from))
	t.stats.nodeDestroyed(from)
	t.stats.nodeCreated(to)
	t.stats.promoted(to)
	t.pools.free(old)
}
