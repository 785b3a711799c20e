package prefixtree

import (
	"iter"
)

// cursor is a position in key order. It only remembers the node it is on;
// moving forward climbs through parent links instead of keeping a stack.
type cursor[V any] struct {
	t *tree[V]
	h Handle
}

func (c cursor[V]) entry() *entry[V] {
	if c.h == nilHandle {
		panic("prefixtree: dereferencing the end position")
	}
	return c.t.nodes.at(c.h).value
}

func (c cursor[V]) next() cursor[V] {
	if c.h == nilHandle {
		return c
	}
	return cursor[V]{t: c.t, h: c.t.next(c.h, c.t.root)}
}

func (c cursor[V]) same(o cursor[V]) bool {
	return c.h == o.h && (c.t == o.t || c.h == nilHandle)
}

// Cursor is a position in a Map that allows updating the value in place.
// The zero Cursor and End() are the end position.
//
// A cursor stays valid across insertions and across erasures of other keys.
// Erasing the key under a cursor invalidates it.
type Cursor[V any] struct {
	cursor[V]
}

// ConstCursor is a read-only position in a Map.
type ConstCursor[V any] struct {
	cursor[V]
}

// Done reports whether c is the end position.
func (c Cursor[V]) Done() bool {
	return c.h == nilHandle
}

func (c Cursor[V]) Key() string {
	return c.entry().key
}

func (c Cursor[V]) Value() V {
	return c.entry().value
}

// Ptr returns a pointer to the value stored under the cursor. It stays
// valid as long as the key is stored.
func (c Cursor[V]) Ptr() *V {
	return &c.entry().value
}

func (c Cursor[V]) Set(value V) {
	c.entry().value = value
}

// Next returns the position of the following key, or the end.
func (c Cursor[V]) Next() Cursor[V] {
	return Cursor[V]{c.next()}
}

func (c Cursor[V]) Equal(o Cursor[V]) bool {
	return c.same(o.cursor)
}

// ReadOnly returns the same position as a ConstCursor.
func (c Cursor[V]) ReadOnly() ConstCursor[V] {
	return ConstCursor[V]{c.cursor}
}

func (c ConstCursor[V]) Done() bool {
	return c.h == nilHandle
}

func (c ConstCursor[V]) Key() string {
	return c.entry().key
}

func (c ConstCursor[V]) Value() V {
	return c.entry().value
}

func (c ConstCursor[V]) Next() ConstCursor[V] {
	return ConstCursor[V]{c.next()}
}

func (c ConstCursor[V]) Equal(o ConstCursor[V]) bool {
	return c.same(o.cursor)
}

// Iterator walks entries in key order.
type Iterator[V any] interface {
	HasNext() bool
	Next() (Entry[V], error)
}

type iterator[V any] struct {
	t     *tree[V]
	next  Handle
	bound Handle
}

func (it *iterator[V]) HasNext() bool {
	return it != nil && it.next != nilHandle
}

func (it *iterator[V]) Next() (Entry[V], error) {
	if !it.HasNext() {
		return Entry[V]{}, ErrNoMoreEntries
	}
	e := it.t.nodes.at(it.next).value
	it.next = it.t.next(it.next, it.bound)
	return Entry[V]{Key: e.key, Value: e.value}, nil
}

// walk yields the entries of the subtree of bound in key order.
func (t *tree[V]) walk(bound Handle, yield func(*entry[V]) bool) {
	if bound == nilHandle {
		return
	}
	for h := t.minimum(bound); h != nilHandle; h = t.next(h, bound) {
		if !yield(t.nodes.at(h).value) {
			return
		}
	}
}

func (t *tree[V]) all(bound Handle) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		t.walk(bound, func(e *entry[V]) bool {
			return yield(e.key, e.value)
		})
	}
}
