package bitpack

import (
	"fmt"

	"github.com/arloliu/hfm/errs"
	"github.com/arloliu/hfm/format"
	"github.com/arloliu/hfm/huffman"
	"github.com/arloliu/hfm/internal/pool"
	"github.com/icza/bitio"
)

// Bitstring is a sequence of '0' and '1' characters.
type Bitstring []byte

// Len returns the number of bits.
func (b Bitstring) Len() int {
	return len(b)
}

func (b Bitstring) String() string {
	return string(b)
}

// Encode concatenates the codes of every byte in src, in order.
//
// The result capacity is computed up front: the sum of all code lengths plus
// maxLength bits of headroom for the end-of-stream code appended by PackToBytes.
//
// Parameters:
//   - src: Input bytes
//   - prefixes: Code of every symbol that occurs in src
//   - maxLength: Longest code in prefixes
//
// Returns:
//   - Bitstring: Encoded bits, empty for empty src
//   - error: errs.ErrUnknownSymbol when a byte of src has no code
func Encode(src []byte, prefixes *huffman.PrefixTable, maxLength int) (Bitstring, error) {
	total := 0
	for i, b := range src {
		code, ok := prefixes.Code(huffman.Symbol(b))
		if !ok {
			return nil, fmt.Errorf("%w: %s at offset %d", errs.ErrUnknownSymbol, huffman.Symbol(b), i)
		}
		total += len(code)
	}

	bits := make(Bitstring, 0, total+maxLength)
	for _, b := range src {
		code, _ := prefixes.Code(huffman.Symbol(b))
		bits = append(bits, code...)
	}

	return bits, nil
}

// PackToBytes appends eosCode to bits and packs the result into framed bytes.
//
// Parameters:
//   - bits: Encoded bits from Encode
//   - eosCode: Code of the end-of-stream symbol
//
// Returns:
//   - []byte: ceil((len(bits)+len(eosCode))/7) bytes, none of them zero
func PackToBytes(bits Bitstring, eosCode huffman.Code) []byte {
	total := len(bits) + len(eosCode)
	if total == 0 {
		return []byte{}
	}

	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)
	bb.Grow(PackedSize(total))

	w := bitio.NewWriter(bb)

	var chunk uint64
	filled := 0
	flush := func() {
		chunk <<= format.FramingWidth - filled
		w.TryWriteBits(chunk, format.FramingWidth)
		w.TryWriteBool(chunk == 0)
		chunk, filled = 0, 0
	}

	for i := range total {
		var c byte
		if i < len(bits) {
			c = bits[i]
		} else {
			c = eosCode[i-len(bits)]
		}
		chunk = chunk<<1 | uint64(c-'0')
		filled++
		if filled == format.FramingWidth {
			flush()
		}
	}
	if filled > 0 {
		flush()
	}
	// writes into a ByteBuffer cannot fail and every byte is complete
	_ = w.Close()

	return bb.Clone()
}

// PackedSize returns the number of payload bytes needed for n code bits.
func PackedSize(n int) int {
	return (n + format.FramingWidth - 1) / format.FramingWidth
}
