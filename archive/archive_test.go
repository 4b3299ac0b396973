package archive

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arloliu/hfm/errs"
	"github.com/arloliu/hfm/format"
	"github.com/stretchr/testify/require"
)

var (
	testKey     = []byte("H:1;e:1;l:3;o:2; :1;W:1;r:1;d:1;!:1;")
	testPayload = []byte{0xA2, 0x5C, 0x13, 0xF0}
)

func TestWriteRead(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	}
	for _, compression := range compressions {
		for _, bigEndian := range []bool{false, true} {
			name := compression.String()
			if bigEndian {
				name += "/big-endian"
			}
			t.Run(name, func(t *testing.T) {
				opts := []WriteOption{WithCompression(compression)}
				if bigEndian {
					opts = append(opts, WithBigEndian())
				}

				var buf bytes.Buffer
				n, err := Write(&buf, testKey, testPayload, opts...)
				require.NoError(t, err)
				require.Equal(t, buf.Len(), n)

				header, err := ReadHeader(buf.Bytes())
				require.NoError(t, err)
				require.Equal(t, compression, header.Flag.GetKeyCompression())
				require.Equal(t, bigEndian, header.Flag.IsBigEndian())
				require.Equal(t, uint32(len(testKey)), header.RawKeySize)
				require.Equal(t, buf.Len(), header.TotalSize())

				key, payload, err := Read(buf.Bytes())
				require.NoError(t, err)
				require.Equal(t, testKey, key)
				require.Equal(t, testPayload, payload)
			})
		}
	}
}

func TestWriteRead_Empty(t *testing.T) {
	var buf bytes.Buffer
	n, err := Write(&buf, nil, nil, WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	require.Equal(t, HeaderSize, n)

	key, payload, err := Read(buf.Bytes())
	require.NoError(t, err)
	require.Empty(t, key)
	require.Empty(t, payload)
}

func TestWrite_InvalidCompression(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(&buf, testKey, testPayload, WithCompression(format.CompressionType(42)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
	require.Zero(t, buf.Len())
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--

	return len(p), nil
}

func TestWrite_WriterError(t *testing.T) {
	n, err := Write(&failingWriter{after: 1}, testKey, testPayload)
	require.ErrorContains(t, err, "disk full")
	require.Equal(t, HeaderSize, n)
}

func TestRead_Errors(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(&buf, testKey, testPayload, WithCompression(format.CompressionS2))
	require.NoError(t, err)
	archive := buf.Bytes()

	t.Run("short header", func(t *testing.T) {
		_, _, err := Read(archive[:HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("truncated sections", func(t *testing.T) {
		_, _, err := Read(archive[:len(archive)-1])
		require.ErrorIs(t, err, errs.ErrInvalidSectionSize)
	})

	t.Run("not an archive", func(t *testing.T) {
		_, _, err := Read(bytes.Repeat([]byte{0x55}, 64))
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("raw key size mismatch", func(t *testing.T) {
		var plain bytes.Buffer
		_, err := Write(&plain, testKey, testPayload)
		require.NoError(t, err)
		corrupted := bytes.Clone(plain.Bytes())
		corrupted[4]++
		_, _, err = Read(corrupted)
		require.ErrorIs(t, err, errs.ErrInvalidSectionSize)
	})
}
