package hfm

import (
	"fmt"

	"github.com/arloliu/hfm/archive"
	"github.com/arloliu/hfm/bitpack"
	"github.com/arloliu/hfm/endian"
	"github.com/arloliu/hfm/format"
	"github.com/arloliu/hfm/huffman"
	"github.com/arloliu/hfm/internal/logger"
	"github.com/arloliu/hfm/internal/options"
	"github.com/arloliu/hfm/internal/pool"
	"github.com/arloliu/hfm/keyfile"
)

// Logger receives the codec's diagnostic messages.
type Logger = logger.Logger

// CodecConfig holds the settings of a Codec.
type CodecConfig struct {
	log            Logger
	cacheSize      int
	keyCompression format.CompressionType
	bigEndian      bool
}

// CodecOption is a functional option for configuring a Codec.
type CodecOption = options.Option[*CodecConfig]

// WithLogger sets the logger receiving debug messages about table sizes and
// tree cache hits. Default discards everything.
func WithLogger(l Logger) CodecOption {
	return options.NoError(func(c *CodecConfig) {
		if l == nil {
			l = logger.Nop()
		}
		c.log = l
	})
}

// WithTreeCache keeps up to size decode trees keyed by their key, so repeated
// decodes with the same key skip tree construction. A size of 0 disables the
// cache, which is the default; a negative size selects huffman.DefaultTreeCacheSize.
func WithTreeCache(size int) CodecOption {
	return options.NoError(func(c *CodecConfig) {
		c.cacheSize = size
	})
}

// WithKeyCompression sets the compression of the key section in archives
// produced by Pack. Default is format.CompressionNone.
func WithKeyCompression(compression format.CompressionType) CodecOption {
	return options.New(func(c *CodecConfig) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.keyCompression = compression
			return nil
		default:
			return fmt.Errorf("invalid key compression: %s", compression)
		}
	})
}

// WithLittleEndian writes archive header sizes little-endian, the default.
func WithLittleEndian() CodecOption {
	return options.NoError(func(c *CodecConfig) {
		c.bigEndian = false
	})
}

// WithBigEndian writes archive header sizes big-endian.
func WithBigEndian() CodecOption {
	return options.NoError(func(c *CodecConfig) {
		c.bigEndian = true
	})
}

// WithNativeEndian writes archive header sizes in the host byte order.
func WithNativeEndian() CodecOption {
	return options.NoError(func(c *CodecConfig) {
		c.bigEndian = endian.IsNativeBigEndian()
	})
}

// Codec compresses and decompresses byte slices, keys and archives.
//
// A Codec is safe for concurrent use. Each call owns its frequency table, tree and
// prefix table; only the optional tree cache is shared.
type Codec struct {
	log         Logger
	cache       *huffman.TreeCache
	archiveOpts []archive.WriteOption
}

// NewCodec creates a Codec.
//
// Parameters:
//   - opts: WithLogger, WithTreeCache, WithKeyCompression, WithBigEndian,
//     WithLittleEndian, WithNativeEndian
//
// Returns:
//   - *Codec: Configured codec
//   - error: Invalid option value
func NewCodec(opts ...CodecOption) (*Codec, error) {
	cfg := &CodecConfig{
		log:            logger.Nop(),
		keyCompression: format.CompressionNone,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	c := &Codec{
		log:         cfg.log,
		archiveOpts: []archive.WriteOption{archive.WithCompression(cfg.keyCompression)},
	}
	if cfg.bigEndian {
		c.archiveOpts = append(c.archiveOpts, archive.WithBigEndian())
	}
	if cfg.cacheSize != 0 {
		c.cache = huffman.NewTreeCache(cfg.cacheSize)
	}

	return c, nil
}

// encoded is the outcome of one encode call.
type encoded struct {
	payload []byte
	table   *huffman.FrequencyTable
	tree    *huffman.Tree
}

func (c *Codec) encode(src []byte) (encoded, error) {
	if len(src) == 0 {
		return encoded{payload: []byte{}}, nil
	}

	return c.encodeCounted(src, huffman.CountSymbols(src))
}

// encodeCounted encodes non-empty src with ft, the byte counts of src.
func (c *Codec) encodeCounted(src []byte, ft *huffman.FrequencyTable) (encoded, error) {
	ft.WithEOS()
	tree := huffman.BuildTree(ft)

	prefixes, maxLen := huffman.DerivePrefixes(tree)
	defer prefixes.Destroy()

	bits, err := bitpack.Encode(src, prefixes, maxLen)
	if err != nil {
		tree.Release()
		return encoded{}, err
	}
	eos, _ := prefixes.Code(huffman.EOS)
	payload := bitpack.PackToBytes(bits, eos)

	c.log.Debugf("encoded %d bytes into %d: %d symbols, max code length %d",
		len(src), len(payload), ft.Len(), maxLen)

	return encoded{payload: payload, table: ft, tree: tree}, nil
}

// decodeTree returns the tree for ft, from the cache when enabled.
func (c *Codec) decodeTree(ft *huffman.FrequencyTable) *huffman.Tree {
	if c.cache == nil {
		return huffman.BuildTree(ft)
	}

	tree, hit := c.cache.Get(ft)
	if hit {
		c.log.Debugf("tree cache hit: key %016x", ft.Fingerprint())
	}

	return tree
}

// EncryptBytes compresses src and returns the payload with the tree that decodes
// it. Empty input yields an empty payload and a nil tree.
//
// The caller owns the tree and may Release it when done.
func (c *Codec) EncryptBytes(src []byte) ([]byte, *huffman.Tree, error) {
	enc, err := c.encode(src)
	if err != nil {
		return nil, nil, err
	}
	if enc.table != nil {
		enc.table.Destroy()
	}

	return enc.payload, enc.tree, nil
}

// DecryptBytes decodes payload with tree.
func (c *Codec) DecryptBytes(payload []byte, tree *huffman.Tree) ([]byte, error) {
	return bitpack.DecodeBitstream(payload, tree)
}

// EncryptKeyed compresses src and returns the payload with its serialized key.
func (c *Codec) EncryptKeyed(src []byte) ([]byte, []byte, error) {
	enc, err := c.encode(src)
	if err != nil {
		return nil, nil, err
	}
	if enc.table == nil {
		return enc.payload, []byte{}, nil
	}
	defer enc.tree.Release()

	return enc.payload, keyfile.Serialize(enc.table), nil
}

// DecryptKeyed rebuilds the tree from key and decodes payload with it.
func (c *Codec) DecryptKeyed(payload, key []byte) ([]byte, error) {
	ft, err := keyfile.Deserialize(key)
	if err != nil {
		return nil, err
	}

	tree := c.decodeTree(ft)
	defer tree.Release()

	out, err := bitpack.DecodeBitstream(payload, tree)
	if err != nil {
		return nil, err
	}
	c.log.Debugf("decoded %d bytes into %d", len(payload), len(out))

	return out, nil
}

// Pack compresses src into a self-contained archive holding the key and payload.
func (c *Codec) Pack(src []byte) ([]byte, error) {
	payload, key, err := c.EncryptKeyed(src)
	if err != nil {
		return nil, err
	}

	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)

	if _, err := archive.Write(bb, key, payload, c.archiveOpts...); err != nil {
		return nil, err
	}

	return bb.Clone(), nil
}

// Unpack restores the original bytes from an archive made by Pack.
func (c *Codec) Unpack(data []byte) ([]byte, error) {
	key, payload, err := archive.Read(data)
	if err != nil {
		return nil, err
	}

	return c.DecryptKeyed(payload, key)
}
