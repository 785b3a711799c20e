package prefixtree

// match returns how many symbols of the label of h are equal to the
// symbols of path starting at pos.
func (t *tree[V]) match(h Handle, path Label, pos int) int {
	label := t.nodes.at(h).label
	idx := 0
	for ; idx < len(label) && pos+idx < len(path); idx++ {
		if label[idx] != path[pos+idx] {
			break
		}
	}
	return idx
}

// matchKey is match against the raw symbols of key.
func (t *tree[V]) matchKey(h Handle, key string, pos int) int {
	label := t.nodes.at(h).label
	idx := 0
	for ; idx < len(label) && pos+idx < len(key); idx++ {
		if label[idx] != t.abc.ToIndex(key[pos+idx]) {
			break
		}
	}
	return idx
}

func (t *tree[V]) newNode(label Label) Handle {
	h := t.nodes.alloc()
	t.nodes.at(h).label = label
	return h
}

// addChild attaches child under parent at slot, allocating the children
// table on first use.
func (t *tree[V]) addChild(parent Handle, slot Index, child Handle) {
	p := t.nodes.at(parent)
	if p.children == nil {
		p.children = t.alloc.Children(t.width)
	}
	p.children[slot] = child
	p.count++
	t.setParent(child, parent, slot)
}

// replaceChild puts child into the slot of parent that is already occupied.
func (t *tree[V]) replaceChild(parent Handle, slot Index, child Handle) {
	t.nodes.at(parent).children[slot] = child
	t.setParent(child, parent, slot)
}

func (t *tree[V]) setParent(child, parent Handle, slot Index) {
	c := t.nodes.at(child)
	c.parent = parent
	c.slot = slot
}

// removeChild clears the slot of h in its parent and frees h together with
// its label. h must have no children.
func (t *tree[V]) removeChild(h Handle) {
	n := t.nodes.at(h)
	p := t.nodes.at(n.parent)
	p.children[n.slot] = nilHandle
	p.count--
	if p.count == 0 {
		t.alloc.ReleaseChildren(p.children)
		p.children = nil
	}
	t.policy.Release(t.alloc, n.label)
	t.nodes.release(h)
}

// firstChild returns the first occupied slot of h at or after from.
func (t *tree[V]) firstChild(h Handle, from int) Handle {
	n := t.nodes.at(h)
	if n.children == nil {
		return nilHandle
	}
	for i := from; i < len(n.children); i++ {
		if c := n.children[i]; c != nilHandle {
			return c
		}
	}
	return nilHandle
}

// minimum returns the node holding the smallest key of the subtree of h.
func (t *tree[V]) minimum(h Handle) Handle {
	for h != nilHandle && t.nodes.at(h).value == nil {
		h = t.firstChild(h, 0)
	}
	return h
}

// depth returns the number of symbols spelled by the strict ancestors of h,
// which is where the label of h starts inside the path of any key below h.
func (t *tree[V]) depth(h Handle) int {
	d := 0
	for p := t.nodes.at(h).parent; p != nilHandle; p = t.nodes.at(p).parent {
		d += len(t.nodes.at(p).label)
	}
	return d
}

// scan continues an in-order walk at slot from of h and returns the next
// node holding a value. It never leaves the subtree of bound.
func (t *tree[V]) scan(h Handle, from int, bound Handle) Handle {
	for {
		if c := t.firstChild(h, from); c != nilHandle {
			if t.nodes.at(c).value != nil {
				return c
			}
			h, from = c, 0
			continue
		}
		n := t.nodes.at(h)
		if h == bound || n.parent == nilHandle {
			return nilHandle
		}
		h, from = n.parent, int(n.slot)+1
	}
}

// next returns the node holding the key following the key of h.
func (t *tree[V]) next(h, bound Handle) Handle {
	n := t.nodes.at(h)
	if !n.isLeaf() {
		return t.scan(h, 0, bound)
	}
	if h == bound || n.parent == nilHandle {
		return nilHandle
	}
	return t.scan(n.parent, int(n.slot)+1, bound)
}

// after returns the first node holding a value past the whole subtree of h.
func (t *tree[V]) after(h Handle) Handle {
	n := t.nodes.at(h)
	if n.parent == nilHandle {
		return nilHandle
	}
	return t.scan(n.parent, int(n.slot)+1, t.root)
}
