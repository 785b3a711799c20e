package prefixtree

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// check verifies the structural invariants of the whole tree. Violations are
// reported as assertion failures: they are bugs, not runtime conditions.
func (t *tree[V]) check() error {
	root := t.nodes.at(t.root)
	if root.parent != nilHandle || len(root.label) != 0 {
		return errors.AssertionFailedf("root has a parent or a label")
	}

	holders, reachable, err := t.checkNode(t.root, nil)
	if err != nil {
		return err
	}
	if len(holders) != t.size {
		return errors.AssertionFailedf("tree reports %d keys but holds %d", t.size, len(holders))
	}
	if live := t.nodes.live(); live != reachable {
		return errors.AssertionFailedf("%d nodes allocated but %d reachable", live, reachable)
	}
	return nil
}

// checkNode verifies the subtree of h, reached through the symbols of
// prefix. It returns the value holders of the subtree and its node count.
func (t *tree[V]) checkNode(h Handle, prefix Label) ([]*entry[V], int, error) {
	n := t.nodes.at(h)
	path := append(slices.Clip(prefix), n.label...)

	if h != t.root {
		if len(n.label) == 0 {
			return nil, 0, errors.AssertionFailedf("node %d has an empty label", h)
		}
		if n.label[0] != n.slot {
			return nil, 0, errors.AssertionFailedf("node %d sits in slot %d but its label starts with %d", h, n.slot, n.label[0])
		}
		if t.nodes.at(n.parent).child(n.slot) != h {
			return nil, 0, errors.AssertionFailedf("node %d is not linked from its parent %d", h, n.parent)
		}
		if n.value == nil && n.count < 2 {
			return nil, 0, errors.AssertionFailedf("valueless node %d has %d children", h, n.count)
		}
	}
	if (n.children == nil) != (n.count == 0) {
		return nil, 0, errors.AssertionFailedf("node %d has %d children but table allocated=%t", h, n.count, n.children != nil)
	}
	if n.children != nil && len(n.children) != t.width {
		return nil, 0, errors.AssertionFailedf("node %d has a table of %d slots, alphabet has %d", h, len(n.children), t.width)
	}

	var holders []*entry[V]
	if n.value != nil {
		if !slices.Equal(n.value.path, path) {
			return nil, 0, errors.AssertionFailedf("node %d spells %v but holds key %q with path %v", h, path, n.value.key, n.value.path)
		}
		if len(n.value.key) != len(path) {
			return nil, 0, errors.AssertionFailedf("key %q does not match its path", n.value.key)
		}
		for i := 0; i < len(path); i++ {
			if t.abc.ToIndex(n.value.key[i]) != path[i] {
				return nil, 0, errors.AssertionFailedf("key %q does not match its path at %d", n.value.key, i)
			}
		}
		holders = append(holders, n.value)
	}

	nodes, occupied := 1, 0
	for _, c := range n.children {
		if c == nilHandle {
			continue
		}
		occupied++
		if t.nodes.at(c).parent != h {
			return nil, 0, errors.AssertionFailedf("node %d is linked from %d but points to parent %d", c, h, t.nodes.at(c).parent)
		}
		sub, count, err := t.checkNode(c, path)
		if err != nil {
			return nil, 0, err
		}
		holders = append(holders, sub...)
		nodes += count
	}
	if occupied != n.count {
		return nil, 0, errors.AssertionFailedf("node %d counts %d children but has %d", h, n.count, occupied)
	}

	if h != t.root && t.policy.Shared() && !t.backed(n.label, len(prefix), holders) {
		return nil, 0, errors.AssertionFailedf("label of node %d is not a view into any key stored below it", h)
	}
	return holders, nodes, nil
}

// backed reports whether label, starting at depth, is a view into the path
// of one of holders.
func (t *tree[V]) backed(label Label, depth int, holders []*entry[V]) bool {
	end := depth + len(label)
	for _, e := range holders {
		if end <= len(e.path) && t.policy.Aliases(label, e.path[depth:end]) {
			return true
		}
	}
	return false
}
