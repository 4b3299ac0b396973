package archive

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/hfm/endian"
	"github.com/arloliu/hfm/errs"
)

// Header is the fixed 16-byte header of an archive.
//
// Layout:
//
//	offset 0-1   magic, always little-endian
//	offset 2     Flag.Options
//	offset 3     Flag.KeyCompression
//	offset 4-7   RawKeySize
//	offset 8-11  KeySize
//	offset 12-15 PayloadSize
//
// The three sizes use the byte order selected by the flag.
type Header struct {
	Flag Flag

	// RawKeySize is the size of the key text before compression.
	RawKeySize uint32
	// KeySize is the size of the stored key section.
	KeySize uint32
	// PayloadSize is the size of the packed payload that follows the key section.
	PayloadSize uint32
}

// NewHeader creates a header for a raw key of rawKeySize bytes stored in keySize
// bytes, followed by payloadSize payload bytes.
func NewHeader(flag Flag, rawKeySize, keySize, payloadSize int) (*Header, error) {
	for _, n := range [...]int{rawKeySize, keySize, payloadSize} {
		if n < 0 || uint64(n) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidSectionSize, n)
		}
	}

	return &Header{
		Flag:        flag,
		RawKeySize:  uint32(rawKeySize),  //nolint: gosec
		KeySize:     uint32(keySize),     //nolint: gosec
		PayloadSize: uint32(payloadSize), //nolint: gosec
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 16 bytes, the magic number does
// not match, or the flags are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if binary.LittleEndian.Uint16(data[0:2]) != Magic {
		return errs.ErrInvalidMagic
	}

	h.Flag.Options = data[2]
	h.Flag.KeyCompression = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.RawKeySize = engine.Uint32(data[4:8])
	h.KeySize = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])

	return nil
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, 0, HeaderSize)

	engine := h.GetEndianEngine()

	b = binary.LittleEndian.AppendUint16(b, Magic)
	b = append(b, h.Flag.Options, h.Flag.KeyCompression)
	b = engine.AppendUint32(b, h.RawKeySize)
	b = engine.AppendUint32(b, h.KeySize)
	b = engine.AppendUint32(b, h.PayloadSize)

	return b
}

// TotalSize returns the size of the whole archive described by h.
func (h *Header) TotalSize() int {
	return HeaderSize + int(h.KeySize) + int(h.PayloadSize)
}

// GetEndianEngine returns the appropriate endian engine based on the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
