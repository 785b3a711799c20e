package prefixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityAlphabets(t *testing.T) {
	assert.Equal(t, 128, ASCII().Size())
	assert.Equal(t, 256, ExtendedASCII().Size())
	for _, b := range []byte{0, 'a', 127} {
		assert.Equal(t, Index(b), ASCII().ToIndex(b))
		assert.Equal(t, b, ASCII().ToSymbol(Index(b)))
	}
	assert.Error(t, validate(ASCII(), "caf\xe9"))
	assert.NoError(t, validate(ExtendedASCII(), "caf\xe9"))
}

func TestNewAlphabet(t *testing.T) {
	require := require.New(t)
	abc, err := NewAlphabet("zyx")
	require.NoError(err)
	require.Equal(3, abc.Size())
	require.Equal(Index(0), abc.ToIndex('z'))
	require.Equal(Index(2), abc.ToIndex('x'))
	require.Equal(byte('y'), abc.ToSymbol(1))
	require.GreaterOrEqual(int(abc.ToIndex('a')), abc.Size())

	_, err = NewAlphabet("")
	require.ErrorIs(err, ErrEmptyAlphabet)

	_, err = NewAlphabet("abca")
	require.ErrorIs(err, ErrDuplicateSymbol)
}

func TestPredefinedAlphabets(t *testing.T) {
	assert.Equal(t, 26, LowerCase().Size())
	assert.Equal(t, 63, CToken().Size())
	assert.Equal(t, Index(0), CToken().ToIndex('0'))
	assert.Equal(t, Index(62), CToken().ToIndex('_'))
	assert.NoError(t, validate(CToken(), "some_Token42"))

	err := validate(LowerCase(), "abc-def")
	assert.ErrorIs(t, err, ErrSymbolOutOfAlphabet)
	assert.Contains(t, err.Error(), "position 3")
}
