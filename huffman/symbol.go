package huffman

import (
	"math"
	"strconv"
)

// Symbol is one element of the coding alphabet: a data byte or EOS.
type Symbol uint16

const (
	// EOS is the end-of-stream sentinel appended to every encoded stream.
	EOS Symbol = 256
	// AlphabetSize is the number of distinct symbols including EOS.
	AlphabetSize = 257

	noSymbol Symbol = math.MaxUint16
)

// IsData reports whether s is a byte value.
func (s Symbol) IsData() bool {
	return s < EOS
}

// Byte returns the byte value of a data symbol.
func (s Symbol) Byte() byte {
	return byte(s)
}

func (s Symbol) String() string {
	switch {
	case s == EOS:
		return "EOS"
	case s > EOS:
		return "Symbol(" + strconv.Itoa(int(s)) + ")"
	case s >= 0x20 && s < 0x7f:
		return strconv.QuoteRune(rune(s))
	default:
		return "0x" + strconv.FormatUint(uint64(s)|0x100, 16)[1:]
	}
}
