package prefixtree

import (
	"fmt"
)

// Index is the dense position of a symbol inside an Alphabet.
type Index uint16

// Alphabet maps key symbols onto the dense range [0, Size()).
// Its size is the branching factor of every node of a tree.
//
// Implementations must be immutable and must not allocate in ToIndex or
// ToSymbol. A symbol that is not part of the alphabet maps to an index
// greater than or equal to Size().
type Alphabet interface {
	ToIndex(symbol byte) Index
	ToSymbol(index Index) byte
	Size() int
}

// identity maps every symbol below n to itself.
type identity struct {
	n int
}

func (a identity) ToIndex(symbol byte) Index {
	return Index(symbol)
}

func (a identity) ToSymbol(index Index) byte {
	return byte(index)
}

func (a identity) Size() int {
	return a.n
}

// ASCII returns the identity alphabet over the 7-bit ASCII range.
func ASCII() Alphabet {
	return identity{n: 128}
}

// ExtendedASCII returns the identity alphabet over all byte values. It is
// the default alphabet of a Map.
func ExtendedASCII() Alphabet {
	return identity{n: 256}
}

type custom struct {
	toIndex  [256]Index
	toSymbol []byte
}

// NewAlphabet builds an alphabet from an ordered list of symbols. The order
// of symbols is the iteration order of keys.
func NewAlphabet(symbols string) (Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}

	a := &custom{toSymbol: []byte(symbols)}
	// unmapped symbols land past the end of the index space
	for i := range a.toIndex {
		a.toIndex[i] = Index(len(symbols))
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if int(a.toIndex[c]) != len(symbols) {
			return nil, fmt.Errorf("%w: %q at position %d", ErrDuplicateSymbol, c, i)
		}
		a.toIndex[c] = Index(i)
	}
	return a, nil
}

func (a *custom) ToIndex(symbol byte) Index {
	return a.toIndex[symbol]
}

func (a *custom) ToSymbol(index Index) byte {
	return a.toSymbol[index]
}

func (a *custom) Size() int {
	return len(a.toSymbol)
}

func mustAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

var (
	lowerCase = mustAlphabet("abcdefghijklmnopqrstuvwxyz")
	cToken    = mustAlphabet("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_")
)

// LowerCase returns the alphabet of the 26 lower case latin letters.
func LowerCase() Alphabet {
	return lowerCase
}

// CToken returns the alphabet of C identifier characters, digits first.
func CToken() Alphabet {
	return cToken
}

// validate reports the first symbol of key outside of abc.
func validate(abc Alphabet, key string) error {
	for i := 0; i < len(key); i++ {
		if int(abc.ToIndex(key[i])) >= abc.Size() {
			return fmt.Errorf("%w: %q at position %d", ErrSymbolOutOfAlphabet, key[i], i)
		}
	}
	return nil
}
