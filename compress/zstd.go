package compress

// ZstdCompressor provides Zstandard compression of key sections.
//
// The implementation is selected at build time: klauspost/compress/zstd by
// default, valyala/gozstd when built with cgo and the "gozstd" tag. Both produce
// standard zstd frames, so archives are interchangeable between builds.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(key)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
