// Package hfm compresses byte streams with static Huffman coding and a persisted
// frequency table (the key).
//
// # Pipeline
//
// Encoding counts byte frequencies, appends the end-of-stream symbol, builds the
// Huffman tree, derives one prefix code per symbol and packs the concatenated
// codes into 7-bit framed bytes. Decoding rebuilds the same tree from the key
// and walks it bit by bit until the end-of-stream code.
//
// # Basic Usage
//
// In memory, with the tree:
//
//	payload, tree, err := hfm.EncryptBytes(data)
//	original, err := hfm.DecryptBytes(payload, tree)
//
// In memory, with a serialized key:
//
//	payload, key, err := hfm.EncryptKeyed(data)
//	original, err := hfm.DecryptKeyed(payload, key)
//
// On disk, as a payload file and a key file:
//
//	err := hfm.EncryptToFiles("notes.txt", "notes.txt.hfm", "notes.txt.hfm.key")
//	err = hfm.DecryptFromFiles("notes.txt.hfm", "notes.txt", "notes.txt.hfm.key")
//
// As a single archive holding both:
//
//	codec, _ := hfm.NewCodec(hfm.WithKeyCompression(format.CompressionZstd))
//	bundle, err := codec.Pack(data)
//	original, err := codec.Unpack(bundle)
//
// # Package Structure
//
// The top-level functions use a default Codec. The building blocks live in the
// huffman, bitpack, keyfile and archive packages.
package hfm

import (
	"github.com/arloliu/hfm/huffman"
)

var defaultCodec, _ = NewCodec()

// EncryptBytes compresses src with the default Codec.
//
// Returns:
//   - []byte: Packed payload, empty for empty src
//   - *huffman.Tree: Tree that decodes the payload, nil for empty src
//   - error: Encoding error
func EncryptBytes(src []byte) ([]byte, *huffman.Tree, error) {
	return defaultCodec.EncryptBytes(src)
}

// DecryptBytes decodes payload with tree using the default Codec.
//
// Returns:
//   - []byte: Original bytes
//   - error: errs.ErrTruncatedStream, errs.ErrEmptyTree or errs.ErrDegenerateTree
func DecryptBytes(payload []byte, tree *huffman.Tree) ([]byte, error) {
	return defaultCodec.DecryptBytes(payload, tree)
}

// EncryptKeyed compresses src and returns the payload and its key text.
func EncryptKeyed(src []byte) ([]byte, []byte, error) {
	return defaultCodec.EncryptKeyed(src)
}

// DecryptKeyed decodes payload with the tree rebuilt from key.
//
// Returns:
//   - []byte: Original bytes
//   - error: errs.ErrMalformedKey for an unparsable key, or a decoding error
func DecryptKeyed(payload, key []byte) ([]byte, error) {
	return defaultCodec.DecryptKeyed(payload, key)
}

// EncryptToFiles compresses the file at in, writing the payload to out and the key
// to key.
func EncryptToFiles(in, out, key string) error {
	return defaultCodec.EncryptToFiles(in, out, key)
}

// DecryptFromFiles restores the file at in using the key file at key, writing the
// original bytes to out.
func DecryptFromFiles(in, out, key string) error {
	return defaultCodec.DecryptFromFiles(in, out, key)
}

// Pack compresses src into an archive with an uncompressed key section.
func Pack(src []byte) ([]byte, error) {
	return defaultCodec.Pack(src)
}

// Unpack restores the original bytes from an archive.
func Unpack(data []byte) ([]byte, error) {
	return defaultCodec.Unpack(data)
}
