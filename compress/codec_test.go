package compress

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/hfm/format"
	"github.com/arloliu/hfm/huffman"
	"github.com/arloliu/hfm/keyfile"
	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

func sampleKey(text string) []byte {
	return keyfile.Serialize(huffman.CountSymbols([]byte(text)).WithEOS())
}

func allBytesKey() []byte {
	data := make([]byte, 0, 256*3)
	for i := range 256 {
		data = append(data, bytes.Repeat([]byte{byte(i)}, i%3+1)...)
	}

	return sampleKey(string(data))
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		cType format.CompressionType
		want  Codec
	}{
		{format.CompressionNone, NoOpCompressor{}},
		{format.CompressionZstd, ZstdCompressor{}},
		{format.CompressionS2, S2Compressor{}},
		{format.CompressionLZ4, LZ4Compressor{}},
	}
	for _, tt := range tests {
		t.Run(tt.cType.String(), func(t *testing.T) {
			codec, err := CreateCodec(tt.cType, "key")
			require.NoError(t, err)
			require.IsType(t, tt.want, codec)

			builtin, err := GetCodec(tt.cType)
			require.NoError(t, err)
			require.IsType(t, tt.want, builtin)
		})
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "key")
	require.ErrorContains(t, err, "invalid key compression")

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name:            "good compression",
			stats:           CompressionStats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 300},
			expectedRatio:   0.3,
			expectedSavings: 70.0,
		},
		{
			name:            "no compression benefit",
			stats:           CompressionStats{Algorithm: format.CompressionNone, OriginalSize: 500, CompressedSize: 500},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name:            "short key overhead",
			stats:           CompressionStats{Algorithm: format.CompressionS2, OriginalSize: 100, CompressedSize: 120},
			expectedRatio:   1.2,
			expectedSavings: -20.0,
		},
		{
			name:            "zero original size",
			stats:           CompressionStats{Algorithm: format.CompressionLZ4, OriginalSize: 0, CompressedSize: 100},
			expectedRatio:   0.0,
			expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 0.001)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 0.001)
		})
	}
}

func TestMeasure(t *testing.T) {
	key := allBytesKey()
	repetitive := []byte(strings.Repeat("the quick brown fox ", 200))

	for _, cType := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(cType.String(), func(t *testing.T) {
			compressed, stats, err := Measure(cType, key)
			require.NoError(t, err)
			require.Equal(t, cType, stats.Algorithm)
			require.Equal(t, int64(len(key)), stats.OriginalSize)
			require.Equal(t, int64(len(compressed)), stats.CompressedSize)
			require.GreaterOrEqual(t, stats.CompressionTimeNs, int64(0))

			codec, err := GetCodec(cType)
			require.NoError(t, err)
			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, key, restored)
		})
	}

	t.Run("repetitive data shrinks", func(t *testing.T) {
		_, stats, err := Measure(format.CompressionZstd, repetitive)
		require.NoError(t, err)
		require.Less(t, stats.CompressionRatio(), 1.0)
	})

	t.Run("none keeps size", func(t *testing.T) {
		_, stats, err := Measure(format.CompressionNone, key)
		require.NoError(t, err)
		require.InDelta(t, 1.0, stats.CompressionRatio(), 0.0001)
	})

	_, _, err := Measure(format.CompressionType(9), key)
	require.Error(t, err)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed)

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)
			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"ttt_key", sampleKey("TTT")},
		{"hello_key", sampleKey("Hello World!")},
		{"all_bytes_key", allBytesKey()},
		{"random_text_key", sampleKey(uniuri.NewLen(10000))},
		{"single_byte", []byte{0x42}},
		{"large_repetitive", bytes.Repeat([]byte("a:1;b:22;c:333;"), 4096)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{"random_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"text_as_compressed", []byte("this is not compressed data")},
		{"corrupted_header", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}
		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	key := sampleKey("Concurrent compression of one key from many decoders")

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(key)
			require.NoError(t, err)

			done := make(chan error, numGoroutines*2)
			for range numGoroutines {
				go func() {
					_, err := codec.Compress(key)
					done <- err
				}()
				go func() {
					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						done <- err
						return
					}
					if !bytes.Equal(key, decompressed) {
						done <- fmt.Errorf("decompressed key mismatch")
						return
					}
					done <- nil
				}()
			}

			for range numGoroutines * 2 {
				require.NoError(t, <-done)
			}
		})
	}
}
