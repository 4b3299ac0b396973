package archive

import (
	"github.com/arloliu/hfm/errs"
	"github.com/arloliu/hfm/format"
)

// Flag holds the packed option byte and the key compression of an archive header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-7 are reserved for future use, must be set to 0.
	Options uint8

	// KeyCompression indicates the compression used for the key section.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	KeyCompression uint8
}

// NewFlag creates a little-endian Flag with an uncompressed key section.
func NewFlag() Flag {
	return Flag{KeyCompression: uint8(format.CompressionNone)}
}

// IsLittleEndian returns whether the header lengths are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header lengths are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// SetKeyCompression sets the key compression type.
func (f *Flag) SetKeyCompression(compression format.CompressionType) {
	f.KeyCompression = uint8(compression)
}

// GetKeyCompression returns the key compression type.
func (f Flag) GetKeyCompression() format.CompressionType {
	return format.CompressionType(f.KeyCompression)
}

var validKeyCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// Validate checks if the flag contains valid values.
func (f Flag) Validate() error {
	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validKeyCompressions[f.KeyCompression]; !ok {
		return errs.ErrInvalidCompression
	}

	return nil
}
