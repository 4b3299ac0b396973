package format

import (
	"fmt"
	"strings"
)

// CompressionType identifies the algorithm applied to an archive key section.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the key section as-is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Bit framing of the packed payload.
const (
	// FramingWidth is the number of code bits carried by each payload byte. They
	// occupy bits 7..1; bit 0 is filler.
	FramingWidth = 7
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType converts a case-insensitive name ("none", "zstd", "s2", "lz4")
// into a CompressionType.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression type %q", name)
	}
}
