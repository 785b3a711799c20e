package prefixtree

// arena stores the nodes of one tree. Handles stay valid until the node is
// released; released slots are reused by later allocations.
type arena[V any] struct {
	nodes []*node[V]
	free  []Handle
}

func newArena[V any]() arena[V] {
	// slot 0 is nilHandle and never handed out
	return arena[V]{nodes: []*node[V]{nil}}
}

func (a *arena[V]) alloc() Handle {
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		return h
	}
	a.nodes = append(a.nodes, &node[V]{})
	return Handle(len(a.nodes) - 1)
}

func (a *arena[V]) release(h Handle) {
	*a.nodes[h] = node[V]{}
	a.free = append(a.free, h)
}

func (a *arena[V]) at(h Handle) *node[V] {
	return a.nodes[h]
}

// live returns the number of allocated nodes.
func (a *arena[V]) live() int {
	return len(a.nodes) - 1 - len(a.free)
}

func (a *arena[V]) reset() {
	*a = newArena[V]()
}
