package art

// Remove deletes the entry for k, if present.
//
// It returns true if an entry was removed, false if k was absent. Remove
// never fails.
func (t *Tree) Remove(k uint64) bool {
	ek := encode(k)

	if t.root == nil {
		return false
	}

	if lf, ok := t.root.(*leaf); ok {
		if !lf.matches(ek) {
			return false
		}
		t.memory -= uint64(lf.size())
		t.root = nil
		return true
	}

	return t.removeAt(&t.root, ek, 0)
}

// removeAt searches the subtree rooted at *ref, which is at depth depth,
// for a leaf matching ek, removing it (and demoting/collapsing *ref if
// necessary) if found.
func (t *Tree) removeAt(ref *node, ek key, depth int) bool {
	n := *ref
	p := n.prefix()

	if p.sharedLength(ek, depth) < int(p.Len) {
		return false
	}
	depth += int(p.Len)

	b := ek[depth]
	child, ok := n.findChild(b)
	if !ok {
		return false
	}

	if asInternal(*child) {
		return t.removeAt(child, ek, depth+1)
	}

	lf := (*child).(*leaf)
	if !lf.matches(ek) {
		return false
	}

	t.memory -= uint64(lf.size())
	t.removeChildAt(ref, b)

	return true
}

// removeChildAt removes the child under byte b from the node at *ref,
// demoting or collapsing *ref first if it is at its kind's minimum size
// (so that removing one more child would underflow the bracket).
func (t *Tree) removeChildAt(ref *node, b byte) {
	n := *ref

	if !n.isMinSize() {
		switch v := n.(type) {
		case *node4:
			v.removeChild(b)
		case *node16:
			v.removeChild(b)
		case *node48:
			v.removeChild(b)
		case *node256:
			v.removeChild(b)
		}
		return
	}

	switch v := n.(type) {
	case *node4:
		t.collapseNode4(ref, v, b)
	case *node16:
		demoted := newNode4FromNode16(t.pools, v, b)
		t.accountDemotion(KindNode16, KindNode4, v)
		*ref = demoted
	case *node48:
		demoted := newNode16FromNode48(t.pools, v, b)
		t.accountDemotion(KindNode48, KindNode16, v)
		*ref = demoted
	case *node256:
		demoted := newNode48FromNode256(t.pools, v, b)
		t.accountDemotion(KindNode256, KindNode48, v)
		*ref = demoted
	}
}

// collapseNode4 handles node4's special minimum of 2: removing the child
// under removedByte leaves exactly one child, which replaces n in its
// parent's slot outright (the prefix-merge invariant of §4.5).
func (t *Tree) collapseNode4(ref *node, n *node4, removedByte byte) {
	var remaining node
	var remainingByte byte

	for i := 0; i < int(n.n); i++ {
		if n.keys[i] != removedByte {
			remaining = n.children[i]
			remainingByte = n.keys[i]
			break
		}
	}

	if asInternal(remaining) {
		remaining.prefix().prepend(n.p, remainingByte)
	}

	t.memory -= uint64(sizeofNode4)
	t.stats.nodeDestroyed(KindNode4)
	t.stats.demoted(KindNode4)
	t.pools.free(n)

	*ref = remaining
}

// accountDemotion updates memory accounting and statistics for a demotion
// from 'from' to 'to', and returns the now-retired old node to its pool.
func (t *Tree) accountDemotion(from, to Kind, old node) {
	t.memory -= uint64(sizeofKind(from)) - uint64(sizeofKind(to))
	t.stats.nodeDestroyed(from)
	t.stats.nodeCreated(to)
	t.stats.demoted(from)
	t.pools.free(old)
}
