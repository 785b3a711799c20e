package prefixtree

import (
	"io"
	"iter"
)

// Map is an ordered map from string keys to values, stored as a compressed
// prefix tree. Keys are ordered by the alphabet index of their symbols,
// symbol by symbol, shorter keys first.
//
// A Map is not safe for concurrent use. Readers must not run while a
// mutation is in progress.
type Map[V any] struct {
	t tree[V]
}

// New returns an empty map. Without options keys may hold any byte, labels
// own their symbols and blocks come from the Go heap.
func New[V any](opts ...Option) *Map[V] {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	m := &Map[V]{}
	m.t.init(c)
	return m
}

func (m *Map[V]) cursor(h Handle) Cursor[V] {
	return Cursor[V]{cursor[V]{t: &m.t, h: h}}
}

// Len returns the number of stored keys.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.t.size
}

func (m *Map[V]) Empty() bool {
	return m.t.size == 0
}

// Clear removes every key and hands all blocks back to the allocator.
func (m *Map[V]) Clear() {
	m.t.clear()
}

// Validate reports whether every symbol of key belongs to the alphabet of m.
// Storing a key that fails validation panics.
func (m *Map[V]) Validate(key string) error {
	return validate(m.t.abc, key)
}

// Insert stores value under key. It reports whether the key was new; an
// existing key keeps its position and gets the new value.
func (m *Map[V]) Insert(key string, value V) (Cursor[V], bool) {
	h, created := m.t.set(key, value)
	return m.cursor(h), created
}

// Swap stores value under key and returns the value it replaced.
func (m *Map[V]) Swap(key string, value V) (old V, replaced bool) {
	if h := m.t.lookup(key); h != nilHandle {
		e := m.t.nodes.at(h).value
		old, e.value = e.value, value
		return old, true
	}
	m.t.set(key, value)
	return old, false
}

// Ref returns a pointer to the value of key, storing the zero value first if
// the key is absent.
func (m *Map[V]) Ref(key string) *V {
	h := m.t.lookup(key)
	if h == nilHandle {
		var zero V
		h, _ = m.t.set(key, zero)
	}
	return &m.t.nodes.at(h).value.value
}

// At returns the value of key, or ErrKeyNotFound.
func (m *Map[V]) At(key string) (V, error) {
	h := m.t.lookup(key)
	if h == nilHandle {
		var zero V
		return zero, ErrKeyNotFound
	}
	return m.t.nodes.at(h).value.value, nil
}

func (m *Map[V]) Get(key string) (V, bool) {
	v, err := m.At(key)
	return v, err == nil
}

func (m *Map[V]) Contains(key string) bool {
	return m.t.lookup(key) != nilHandle
}

// Count returns 1 if key is stored and 0 otherwise.
func (m *Map[V]) Count(key string) int {
	if m.Contains(key) {
		return 1
	}
	return 0
}

// Find returns the position of key, or the end.
func (m *Map[V]) Find(key string) Cursor[V] {
	return m.cursor(m.t.lookup(key))
}

// Erase removes the key under pos and returns the position that followed
// it. Erasing the end is a no-op.
func (m *Map[V]) Erase(pos Cursor[V]) Cursor[V] {
	if pos.Done() {
		return pos
	}
	next := pos.Next()
	m.t.remove(pos.h)
	return next
}

// EraseRange removes the keys in [first, last) and returns last.
func (m *Map[V]) EraseRange(first, last Cursor[V]) Cursor[V] {
	for !first.Equal(last) && !first.Done() {
		first = m.Erase(first)
	}
	return first
}

// EraseKey removes key and returns how many keys were removed, 0 or 1.
func (m *Map[V]) EraseKey(key string) int {
	h := m.t.lookup(key)
	if h == nilHandle {
		return 0
	}
	m.t.remove(h)
	return 1
}

// Begin returns the position of the smallest key.
func (m *Map[V]) Begin() Cursor[V] {
	return m.cursor(m.t.minimum(m.t.root))
}

// End returns the position past the largest key.
func (m *Map[V]) End() Cursor[V] {
	return m.cursor(nilHandle)
}

// LowerBound returns the position of the first key not less than key.
func (m *Map[V]) LowerBound(key string) Cursor[V] {
	return m.cursor(m.t.bound(key, false))
}

// UpperBound returns the position of the first key greater than key.
func (m *Map[V]) UpperBound(key string) Cursor[V] {
	return m.cursor(m.t.bound(key, true))
}

// Iterator returns an iterator over all entries in key order. The map must
// not be modified while the iterator is in use.
func (m *Map[V]) Iterator() Iterator[V] {
	return &iterator[V]{
		t:     &m.t,
		next:  m.t.minimum(m.t.root),
		bound: m.t.root,
	}
}

// All yields every entry in key order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return m.t.all(m.t.root)
}

// Keys yields every key in order.
func (m *Map[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		m.t.walk(m.t.root, func(e *entry[V]) bool {
			return yield(e.key)
		})
	}
}

// WithPrefix yields, in key order, the entries whose key starts with prefix.
// Only the subtree spelling prefix is visited.
func (m *Map[V]) WithPrefix(prefix string) iter.Seq2[string, V] {
	return m.t.all(m.t.prefixRoot(prefix))
}

// KeysWithPrefix returns the keys starting with prefix, in order.
func (m *Map[V]) KeysWithPrefix(prefix string) []string {
	keys := make([]string, 0)
	m.t.walk(m.t.prefixRoot(prefix), func(e *entry[V]) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}

// Check verifies the internal structure of m. A non-nil error is an
// assertion failure and means m is corrupted.
func (m *Map[V]) Check() error {
	return m.t.check()
}

// Dump writes the shape of the tree to w, one edge per line.
func (m *Map[V]) Dump(w io.Writer) error {
	return m.t.dump(w)
}
