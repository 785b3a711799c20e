package prefixtree

import (
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/e11jah/prefixtree/internal/invariants"
)

type tree[V any] struct {
	abc    Alphabet
	width  int
	policy LabelPolicy
	alloc  Allocator
	log    zerolog.Logger

	nodes arena[V]
	root  Handle
	size  int
}

func (t *tree[V]) init(c config) {
	t.abc = c.abc
	t.width = c.abc.Size()
	t.policy = c.policy
	t.alloc = c.alloc
	t.log = c.log
	t.nodes = newArena[V]()
	t.root = t.nodes.alloc()
}

// toPath converts key into a freshly allocated slice of alphabet indices.
func (t *tree[V]) toPath(key string) Label {
	path := t.alloc.Label(len(key))
	for i := 0; i < len(key); i++ {
		idx := t.abc.ToIndex(key[i])
		if int(idx) >= t.width {
			t.alloc.ReleaseLabel(path)
			panic(errors.Wrapf(ErrSymbolOutOfAlphabet, "key %q, symbol %q at position %d", key, key[i], i))
		}
		path[i] = idx
	}
	return path
}

// descend follows key from the root for as long as it matches. It returns
// the last node reached, the number of symbols matched inside that node's
// label and the number of symbols of key consumed.
//
// The walk stops on a mismatch inside a label, on an empty child slot, or
// when key is exhausted.
func (t *tree[V]) descend(key string) (h Handle, matched, pos int) {
	h = t.root
	for {
		matched = t.matchKey(h, key, pos)
		pos += matched
		if matched < len(t.nodes.at(h).label) || pos == len(key) {
			return h, matched, pos
		}
		next := t.nodes.at(h).child(t.abc.ToIndex(key[pos]))
		if next == nilHandle {
			return h, matched, pos
		}
		h = next
	}
}

// lookup returns the node holding key, or nilHandle.
func (t *tree[V]) lookup(key string) Handle {
	h, matched, pos := t.descend(key)
	n := t.nodes.at(h)
	if pos != len(key) || matched != len(n.label) || n.value == nil {
		return nilHandle
	}
	return h
}

// insertPath returns the node spelling path, creating leaves and splitting
// edges as needed. Existing nodes keep their identity.
func (t *tree[V]) insertPath(path Label) Handle {
	h, pos := t.root, 0
	for pos < len(path) {
		slot := path[pos]
		child := t.nodes.at(h).child(slot)
		if child == nilHandle {
			leaf := t.newNode(t.policy.Make(path, pos, len(path)-pos, t.alloc))
			t.addChild(h, slot, leaf)
			return leaf
		}

		matched := t.match(child, path, pos)
		if matched < len(t.nodes.at(child).label) {
			child = t.split(child, matched)
		}
		h = child
		pos += matched
	}
	return h
}

// split cuts the label of h after at symbols. A new node takes the place of
// h in its parent with the head of the label; h is reattached below it with
// the tail. The new node is returned.
func (t *tree[V]) split(h Handle, at int) Handle {
	n := t.nodes.at(h)
	label := n.label
	head := t.policy.Make(label, 0, at, t.alloc)
	tail := t.policy.Make(label, at, len(label)-at, t.alloc)
	t.policy.Release(t.alloc, label)

	parent, slot := n.parent, n.slot
	mid := t.newNode(head)
	t.replaceChild(parent, slot, mid)

	t.nodes.at(h).label = tail
	t.addChild(mid, tail[0], h)

	t.log.Debug().
		Str("op", "split").
		Int("at", at).
		Int("label_len", len(label)).
		Msg("split edge")
	return mid
}

// remove erases the value held by h and restores path compression.
func (t *tree[V]) remove(h Handle) {
	n := t.nodes.at(h)
	dead := n.value
	n.value = nil
	t.size--

	cur := h
	if n.parent != nilHandle && n.isLeaf() {
		cur = n.parent
		t.removeChild(h)
	}

	c := t.nodes.at(cur)
	if c.parent != nilHandle && c.value == nil && c.count == 1 {
		cur = t.merge(cur)
	}

	if t.policy.Shared() {
		t.rewrite(cur, dead.path)
	}
	t.alloc.ReleaseLabel(dead.path)

	if invariants.Enabled {
		t.mustCheck()
	}
}

// merge folds the valueless, single-child node h into its child. The child
// takes the slot of h with the concatenated label and is returned.
func (t *tree[V]) merge(h Handle) Handle {
	n := t.nodes.at(h)
	child := t.firstChild(h, 0)
	c := t.nodes.at(child)

	start := t.depth(h)
	witness := t.nodes.at(t.minimum(child)).value.path
	label := t.policy.Concat(t.alloc, n.label, c.label, witness, start)
	t.policy.Release(t.alloc, n.label)
	t.policy.Release(t.alloc, c.label)
	c.label = label

	t.replaceChild(n.parent, n.slot, child)
	t.alloc.ReleaseChildren(n.children)
	t.nodes.release(h)

	t.log.Debug().
		Str("op", "merge").
		Int("start", start).
		Int("label_len", len(label)).
		Msg("merge edge")
	return child
}

// rewrite re-points every label on the way from h up to the root that is a
// view into dead, the path of an erased key. Each such label is replaced by
// the same region of the smallest key still stored below its node.
func (t *tree[V]) rewrite(h Handle, dead Label) {
	start := t.depth(h)
	for h != t.root {
		n := t.nodes.at(h)
		end := start + len(n.label)
		if end <= len(dead) && t.policy.Aliases(n.label, dead[start:end]) {
			witness := t.nodes.at(t.minimum(h)).value
			n.label = t.policy.Make(witness.path, start, len(n.label), t.alloc)
			t.log.Debug().
				Str("op", "rewrite").
				Str("key", witness.key).
				Int("start", start).
				Int("label_len", len(n.label)).
				Msg("rewrite shared label")
		}
		h = n.parent
		start -= len(t.nodes.at(h).label)
	}
}

// set stores value under key, reporting whether key was new.
func (t *tree[V]) set(key string, value V) (Handle, bool) {
	if h := t.lookup(key); h != nilHandle {
		t.nodes.at(h).value.value = value
		return h, false
	}

	path := t.toPath(key)
	h := t.insertPath(path)
	t.nodes.at(h).value = &entry[V]{key: key, path: path, value: value}
	t.size++

	if invariants.Enabled {
		t.mustCheck()
	}
	return h, true
}

// clear releases every block of the tree and starts over with an empty root.
func (t *tree[V]) clear() {
	stack := []Handle{t.root}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes.at(h)
		for _, c := range n.children {
			if c != nilHandle {
				stack = append(stack, c)
			}
		}
		if n.children != nil {
			t.alloc.ReleaseChildren(n.children)
		}
		if len(n.label) > 0 {
			t.policy.Release(t.alloc, n.label)
		}
		if n.value != nil {
			t.alloc.ReleaseLabel(n.value.path)
		}
	}

	t.nodes.reset()
	t.root = t.nodes.alloc()
	t.size = 0
}

// bound returns the node of the first key not less than key, or the first key
// greater than key when strict is set, in alphabet order.
func (t *tree[V]) bound(key string, strict bool) Handle {
	h, matched, pos := t.descend(key)
	n := t.nodes.at(h)
	switch {
	case matched < len(n.label) && pos < len(key):
		// diverged inside the label: the whole subtree sits on one side
		if t.abc.ToIndex(key[pos]) < n.label[matched] {
			return t.minimum(h)
		}
		return t.after(h)
	case matched < len(n.label):
		// key is a proper prefix of every key below h
		return t.minimum(h)
	case pos == len(key):
		if n.value == nil {
			return t.minimum(h)
		}
		if strict {
			return t.next(h, t.root)
		}
		return h
	default:
		// no child for key[pos]: continue with the next occupied slot
		return t.scan(h, int(t.abc.ToIndex(key[pos]))+1, t.root)
	}
}

// prefixRoot returns the topmost node whose keys all start with prefix.
func (t *tree[V]) prefixRoot(prefix string) Handle {
	h, _, pos := t.descend(prefix)
	if pos != len(prefix) {
		return nilHandle
	}
	return h
}

func (t *tree[V]) mustCheck() {
	if err := t.check(); err != nil {
		panic(err)
	}
}
