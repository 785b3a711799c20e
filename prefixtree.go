package prefixtree

import (
	"errors"

	"github.com/rs/zerolog"
)

const (
	// nilHandle marks an empty child slot, a missing parent or the end
	// position of a cursor.
	nilHandle Handle = 0
)

var (
	ErrKeyNotFound         = errors.New("key not found")
	ErrNoMoreEntries       = errors.New("there are no more entries in the tree")
	ErrEmptyAlphabet       = errors.New("alphabet has no symbols")
	ErrDuplicateSymbol     = errors.New("alphabet symbol is listed twice")
	ErrSymbolOutOfAlphabet = errors.New("symbol is not part of the alphabet")
)

type (
	// Handle addresses a node inside the arena of one tree.
	Handle uint32

	// Label is the sequence of alphabet indices carried by the edge leading
	// into a node. A label is never modified once attached.
	Label []Index

	node[V any] struct {
		label Label
		// value is set iff the path from the root spells a stored key
		value *entry[V]
		// children is nil until the first child is attached and is handed
		// back to the allocator when count drops to zero
		children []Handle
		count    int
		parent   Handle
		// slot in the parent's children table
		slot Index
	}

	// value holder
	entry[V any] struct {
		key string
		// key converted to alphabet indices; shared labels point into it
		path  Label
		value V
	}

	// Entry is a key and its mapped value.
	Entry[V any] struct {
		Key   string
		Value V
	}

	config struct {
		abc    Alphabet
		policy LabelPolicy
		alloc  Allocator
		log    zerolog.Logger
	}

	// Option configures a Map at construction.
	Option func(*config)
)

func defaultConfig() config {
	return config{
		abc:    ExtendedASCII(),
		policy: Owned(),
		alloc:  HeapAllocator(),
		log:    zerolog.Nop(),
	}
}

// WithAlphabet sets the alphabet keys are made of.
func WithAlphabet(abc Alphabet) Option {
	return func(c *config) {
		c.abc = abc
	}
}

// WithLabelPolicy selects how edge labels hold their symbols.
func WithLabelPolicy(p LabelPolicy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithAllocator routes children tables and label buffers through alloc.
func WithAllocator(alloc Allocator) Option {
	return func(c *config) {
		c.alloc = alloc
	}
}

// WithLogger makes the tree report splits, merges and label rewrites at
// debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

func (n *node[V]) isLeaf() bool {
	return n.count == 0
}

func (n *node[V]) child(i Index) Handle {
	if n.children == nil || int(i) >= len(n.children) {
		return nilHandle
	}
	return n.children[i]
}
