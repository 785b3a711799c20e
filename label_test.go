package prefixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnedLabels(t *testing.T) {
	p := Owned()
	src := Label{1, 2, 3, 4}

	l := p.Make(src, 1, 2, HeapAllocator())
	assert.Equal(t, Label{2, 3}, l)
	src[1] = 9
	assert.Equal(t, Label{2, 3}, l, "owned labels copy their symbols")

	assert.Equal(t, Label{2, 3, 7}, p.Concat(HeapAllocator(), l, Label{7}, nil, 0))
	assert.False(t, p.Aliases(l, l))
	assert.False(t, p.Shared())
}

func TestSharedViewLabels(t *testing.T) {
	p := SharedView()
	src := Label{1, 2, 3, 4}

	l := p.Make(src, 1, 2, nil)
	assert.Equal(t, Label{2, 3}, l)
	assert.Equal(t, 2, cap(l))
	assert.True(t, p.Aliases(l, src[1:3]))
	assert.False(t, p.Aliases(l, src[1:2]))
	assert.False(t, p.Aliases(l, src[2:4]))
	assert.False(t, p.Aliases(l, Label{2, 3}))
	assert.False(t, p.Aliases(nil, nil))

	witness := Label{5, 2, 3, 4, 6}
	joined := p.Concat(nil, Label{2}, Label{3, 4}, witness, 1)
	assert.Equal(t, Label{2, 3, 4}, joined)
	assert.True(t, p.Aliases(joined, witness[1:4]))
	assert.True(t, p.Shared())
}
