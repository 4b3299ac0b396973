// Package compress provides the codecs applied to the key section of an hfm archive.
//
// The Huffman payload is already entropy coded and is stored as-is. The key, a
// text list of symbol:count records, compresses well with a general-purpose
// algorithm, so archives may store it compressed:
//   - None: No compression
//   - Zstd: Best ratio, klauspost/compress or valyala/gozstd (cgo, "gozstd" build tag)
//   - S2: Fast, klauspost/compress/s2
//   - LZ4: Fast decompression, pierrec/lz4
//
// All codecs are stateless values that are safe for concurrent use; encoders and
// decoders with internal state are pooled.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	section, err := codec.Compress(key)
//
// Measure runs one compress/decompress round and reports CompressionStats, which
// the hfm inspect command uses to compare codecs on a given key.
package compress
