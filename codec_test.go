package hfm

import (
	"bytes"
	"sync"
	"testing"

	"github.com/arloliu/hfm/archive"
	"github.com/arloliu/hfm/endian"
	"github.com/arloliu/hfm/format"
	"github.com/arloliu/hfm/internal/logger"
	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodec_Options(t *testing.T) {
	_, err := NewCodec(WithKeyCompression(format.CompressionType(0x7F)))
	require.Error(t, err)

	c, err := NewCodec(WithLogger(nil), WithTreeCache(0))
	require.NoError(t, err)
	require.Nil(t, c.cache)

	c, err = NewCodec(WithTreeCache(-1))
	require.NoError(t, err)
	require.NotNil(t, c.cache)
}

func TestCodec_PackUnpack(t *testing.T) {
	in := []byte(uniuri.NewLen(4096))

	compressions := []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	}
	endians := map[string]CodecOption{
		"little": WithLittleEndian(),
		"big":    WithBigEndian(),
		"native": WithNativeEndian(),
	}

	for _, compression := range compressions {
		for endianName, endianOpt := range endians {
			t.Run(compression.String()+"/"+endianName, func(t *testing.T) {
				c, err := NewCodec(WithKeyCompression(compression), endianOpt)
				require.NoError(t, err)

				bundle, err := c.Pack(in)
				require.NoError(t, err)

				header, err := archive.ReadHeader(bundle)
				require.NoError(t, err)
				require.Equal(t, compression, header.Flag.GetKeyCompression())
				wantBig := endianName == "big" || (endianName == "native" && endian.IsNativeBigEndian())
				require.Equal(t, wantBig, header.Flag.IsBigEndian())
				require.Len(t, bundle, header.TotalSize())

				out, err := c.Unpack(bundle)
				require.NoError(t, err)
				require.Equal(t, in, out)

				// archives decode with any codec configuration
				out, err = Unpack(bundle)
				require.NoError(t, err)
				require.Equal(t, in, out)
			})
		}
	}
}

func TestCodec_PackEmpty(t *testing.T) {
	c, err := NewCodec(WithKeyCompression(format.CompressionS2))
	require.NoError(t, err)

	bundle, err := c.Pack(nil)
	require.NoError(t, err)
	require.Len(t, bundle, archive.HeaderSize)

	out, err := c.Unpack(bundle)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestCodec_TreeCache(t *testing.T) {
	var logs bytes.Buffer
	c, err := NewCodec(WithTreeCache(4), WithLogger(logger.New(&logs, logger.LevelDebug)))
	require.NoError(t, err)

	in := []byte("decoded twice with one key")
	payload, key, err := c.EncryptKeyed(in)
	require.NoError(t, err)

	for range 3 {
		out, err := c.DecryptKeyed(payload, key)
		require.NoError(t, err)
		require.Equal(t, in, out)
	}

	require.Equal(t, 1, c.cache.Len())
	require.Equal(t, 2, bytes.Count(logs.Bytes(), []byte("tree cache hit")))
	require.Contains(t, logs.String(), "[DEBUG] encoded 26 bytes")
}

func TestCodec_ConcurrentDecode(t *testing.T) {
	c, err := NewCodec(WithTreeCache(8))
	require.NoError(t, err)

	inputs := [][]byte{
		[]byte("first document"),
		[]byte("second document"),
		[]byte(uniuri.NewLen(2048)),
	}
	type keyed struct{ payload, key []byte }
	encoded := make([]keyed, len(inputs))
	for i, in := range inputs {
		payload, key, err := c.EncryptKeyed(in)
		require.NoError(t, err)
		encoded[i] = keyed{payload, key}
	}

	var wg sync.WaitGroup
	for range 8 {
		for i := range inputs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				out, err := c.DecryptKeyed(encoded[i].payload, encoded[i].key)
				assert.NoError(t, err)
				assert.Equal(t, inputs[i], out)
			}()
		}
	}
	wg.Wait()

	require.Equal(t, len(inputs), c.cache.Len())
}
