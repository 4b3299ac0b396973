// Package archive bundles a key and a packed payload into a single file.
//
// An archive is a 16-byte Header followed by the key section and the payload:
//
//	+--------+-------------------------+------------------+
//	| header | key (optionally packed) | huffman payload  |
//	+--------+-------------------------+------------------+
//
// The key section may be compressed with one of the compress codecs; the payload
// is stored as produced by bitpack.PackToBytes.
package archive

import (
	"fmt"
	"io"

	"github.com/arloliu/hfm/compress"
	"github.com/arloliu/hfm/errs"
	"github.com/arloliu/hfm/format"
	"github.com/arloliu/hfm/internal/options"
)

// WriteConfig holds the settings of Write.
type WriteConfig struct {
	flag Flag
}

// WriteOption configures Write.
type WriteOption = options.Option[*WriteConfig]

// WithCompression compresses the key section with the given algorithm.
func WithCompression(compression format.CompressionType) WriteOption {
	return options.New(func(c *WriteConfig) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
		}
		c.flag.SetKeyCompression(compression)

		return nil
	})
}

// WithBigEndian stores the header sizes big-endian.
func WithBigEndian() WriteOption {
	return options.NoError(func(c *WriteConfig) {
		c.flag.WithBigEndian()
	})
}

// WithLittleEndian stores the header sizes little-endian, the default.
func WithLittleEndian() WriteOption {
	return options.NoError(func(c *WriteConfig) {
		c.flag.WithLittleEndian()
	})
}

// Write writes an archive holding key and payload to w.
//
// Parameters:
//   - w: Destination
//   - key: Key text from keyfile.Serialize
//   - payload: Packed payload from bitpack.PackToBytes
//   - opts: WithCompression, WithBigEndian, WithLittleEndian
//
// Returns:
//   - int: Number of bytes written
//   - error: Option, compression or write error
func Write(w io.Writer, key, payload []byte, opts ...WriteOption) (int, error) {
	cfg := &WriteConfig{flag: NewFlag()}
	if err := options.Apply(cfg, opts...); err != nil {
		return 0, err
	}

	codec, err := compress.CreateCodec(cfg.flag.GetKeyCompression(), "key")
	if err != nil {
		return 0, err
	}
	section, err := codec.Compress(key)
	if err != nil {
		return 0, fmt.Errorf("compress key: %w", err)
	}

	header, err := NewHeader(cfg.flag, len(key), len(section), len(payload))
	if err != nil {
		return 0, err
	}

	written := 0
	for _, part := range [...][]byte{header.Bytes(), section, payload} {
		n, err := w.Write(part)
		written += n
		if err != nil {
			return written, fmt.Errorf("write archive: %w", err)
		}
	}

	return written, nil
}

// Read splits an archive into its key text and payload, decompressing the key
// section if needed. The payload aliases data.
//
// Returns:
//   - []byte: Key text
//   - []byte: Packed payload
//   - error: Header errors from Header.Parse, errs.ErrInvalidSectionSize when
//     the sections do not fit data, or a key decompression error
func Read(data []byte) ([]byte, []byte, error) {
	header, err := ReadHeader(data)
	if err != nil {
		return nil, nil, err
	}

	if uint64(len(data)) < uint64(HeaderSize)+uint64(header.KeySize)+uint64(header.PayloadSize) {
		return nil, nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidSectionSize,
			uint64(HeaderSize)+uint64(header.KeySize)+uint64(header.PayloadSize), len(data))
	}

	keyEnd := KeyOffset + int(header.KeySize)
	section := data[KeyOffset:keyEnd]
	payload := data[keyEnd : keyEnd+int(header.PayloadSize)]

	codec, err := compress.CreateCodec(header.Flag.GetKeyCompression(), "key")
	if err != nil {
		return nil, nil, err
	}
	key, err := codec.Decompress(section)
	if err != nil {
		return nil, nil, fmt.Errorf("decompress key: %w", err)
	}
	if len(key) != int(header.RawKeySize) {
		return nil, nil, fmt.Errorf("%w: key is %d bytes, header says %d", errs.ErrInvalidSectionSize,
			len(key), header.RawKeySize)
	}

	return key, payload, nil
}

// ReadHeader parses the header at the start of data.
func ReadHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	header := &Header{}
	if err := header.Parse(data[:HeaderSize]); err != nil {
		return nil, err
	}

	return header, nil
}
