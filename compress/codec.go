package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/hfm/format"
)

// Compressor compresses a key section before it is stored in an archive.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller (NoOp returns the input itself)
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a key section read from an archive.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	key, err := decompressor.Decompress(section)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with another algorithm
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression round of a key section.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression. Short keys often come out
// above 1.0 because of the codec's framing overhead.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
//
// Returns:
//   - float64: Space savings percentage, negative when compression grew the data
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with the built-in codec of compressionType, checks that
// it decompresses back, and reports sizes and timings.
//
// Parameters:
//   - compressionType: Algorithm to measure
//   - data: Key section to compress
//
// Returns:
//   - []byte: Compressed data
//   - CompressionStats: Sizes and timings of the round
//   - error: Unsupported type, or a codec failure
func Measure(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	stats := CompressionStats{Algorithm: compressionType, OriginalSize: int64(len(data))}

	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, stats, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, stats, fmt.Errorf("%s compress: %w", compressionType, err)
	}
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	if err != nil {
		return nil, stats, fmt.Errorf("%s decompress: %w", compressionType, err)
	}
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()
	if len(restored) != len(data) {
		return nil, stats, fmt.Errorf("%s round trip: got %d bytes, want %d", compressionType, len(restored), len(data))
	}

	return compressed, stats, nil
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
