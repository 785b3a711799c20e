package prefixtree

import (
	"math/bits"
)

//go:generate mockgen -source allocator.go -destination allocator_mocks.go -package prefixtree

// Allocator hands out the fixed-size blocks a tree is built from: children
// tables and label buffers. Every block acquired by a tree is released back
// exactly once, either when the structure shrinks or on Clear.
type Allocator interface {
	// Children returns a zeroed table of n slots.
	Children(n int) []Handle
	ReleaseChildren(c []Handle)
	// Label returns a buffer of n indices. Its content is unspecified.
	Label(n int) Label
	ReleaseLabel(l Label)
}

type heapAllocator struct{}

// HeapAllocator returns an allocator backed by the Go heap. Releasing a
// block is a no-op and leaves it to the garbage collector.
func HeapAllocator() Allocator {
	return heapAllocator{}
}

func (heapAllocator) Children(n int) []Handle {
	return make([]Handle, n)
}

func (heapAllocator) ReleaseChildren([]Handle) {}

func (heapAllocator) Label(n int) Label {
	if n == 0 {
		return nil
	}
	return make(Label, n)
}

func (heapAllocator) ReleaseLabel(Label) {}

// PoolAllocator recycles released blocks. Children tables are pooled by
// size; label buffers by power-of-two capacity class.
//
// A released block is handed out again, so any view left pointing into a
// released label buffer observes whatever the next owner writes there.
type PoolAllocator struct {
	tables map[int][][]Handle
	labels [bits.UintSize][]Label

	liveTables int
	liveLabels int
}

func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{
		tables: make(map[int][][]Handle),
	}
}

func (p *PoolAllocator) Children(n int) []Handle {
	p.liveTables++
	free := p.tables[n]
	if len(free) == 0 {
		return make([]Handle, n)
	}
	c := free[len(free)-1]
	p.tables[n] = free[:len(free)-1]
	return c
}

func (p *PoolAllocator) ReleaseChildren(c []Handle) {
	if c == nil {
		return
	}
	p.liveTables--
	clear(c)
	p.tables[len(c)] = append(p.tables[len(c)], c)
}

func sizeClass(n int) int {
	return bits.Len(uint(n - 1))
}

func (p *PoolAllocator) Label(n int) Label {
	if n == 0 {
		return nil
	}
	p.liveLabels++
	class := sizeClass(n)
	free := p.labels[class]
	if len(free) == 0 {
		return make(Label, n, 1<<class)
	}
	l := free[len(free)-1]
	p.labels[class] = free[:len(free)-1]
	return l[:n]
}

func (p *PoolAllocator) ReleaseLabel(l Label) {
	if cap(l) == 0 {
		return
	}
	p.liveLabels--
	class := sizeClass(cap(l))
	if 1<<class != cap(l) {
		// not one of ours
		return
	}
	p.labels[class] = append(p.labels[class], l[:0])
}

// Live returns how many children tables and label buffers are currently
// handed out.
func (p *PoolAllocator) Live() (tables, labels int) {
	return p.liveTables, p.liveLabels
}
