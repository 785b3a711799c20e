package prefixtree

// LabelPolicy decides how edge labels hold their symbols. A tree uses one
// policy for its whole lifetime.
type LabelPolicy interface {
	// Make returns a label equal to src[start : start+length].
	Make(src Label, start, length int, alloc Allocator) Label
	// Concat returns a label equal to first followed by second. witness is
	// the path of a stored key spelling the same symbols at
	// [start, start+len(first)+len(second)).
	Concat(alloc Allocator, first, second Label, witness Label, start int) Label
	// Release gives up a label that is no longer attached to a node.
	Release(alloc Allocator, l Label)
	// Aliases reports whether a and b are the same region of one buffer.
	Aliases(a, b Label) bool
	// Shared reports whether labels borrow the buffers of stored keys.
	Shared() bool
}

type owned struct{}

// Owned returns the policy where every label owns a private copy of its
// symbols. Splits and merges allocate; no two nodes ever share memory.
func Owned() LabelPolicy {
	return owned{}
}

func (owned) Make(src Label, start, length int, alloc Allocator) Label {
	l := alloc.Label(length)
	copy(l, src[start:start+length])
	return l
}

func (owned) Concat(alloc Allocator, first, second Label, _ Label, _ int) Label {
	l := alloc.Label(len(first) + len(second))
	copy(l[copy(l, first):], second)
	return l
}

func (owned) Release(alloc Allocator, l Label) {
	alloc.ReleaseLabel(l)
}

func (owned) Aliases(a, b Label) bool {
	return false
}

func (owned) Shared() bool {
	return false
}

type sharedView struct{}

// SharedView returns the policy where labels are views into the paths of
// stored keys. Splitting a label never allocates, at the price of
// rewriting views whose key is erased.
func SharedView() LabelPolicy {
	return sharedView{}
}

func (sharedView) Make(src Label, start, length int, _ Allocator) Label {
	end := start + length
	return src[start:end:end]
}

func (sharedView) Concat(_ Allocator, first, second Label, witness Label, start int) Label {
	end := start + len(first) + len(second)
	return witness[start:end:end]
}

func (sharedView) Release(Allocator, Label) {}

func (sharedView) Aliases(a, b Label) bool {
	return len(a) > 0 && len(a) == len(b) && &a[0] == &b[0]
}

func (sharedView) Shared() bool {
	return true
}
