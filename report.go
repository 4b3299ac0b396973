package hfm

import (
	"fmt"
	"io"

	"github.com/arloliu/hfm/bitpack"
	"github.com/arloliu/hfm/compress"
	"github.com/arloliu/hfm/format"
	"github.com/arloliu/hfm/huffman"
	"github.com/arloliu/hfm/keyfile"
	json "github.com/json-iterator/go"
)

// SymbolReport describes the code of one symbol.
type SymbolReport struct {
	Symbol string `json:"symbol"`
	// Byte is the data byte, -1 for end-of-stream.
	Byte  int    `json:"byte"`
	Count uint64 `json:"count"`
	Code  string `json:"code"`
	// Bits is Count times the code length.
	Bits uint64 `json:"bits"`
}

// KeyCompressionReport describes the key section stored with one algorithm.
type KeyCompressionReport struct {
	Algorithm string  `json:"algorithm"`
	Size      int64   `json:"size"`
	Ratio     float64 `json:"ratio"`
}

// Report summarizes what a key encodes to.
type Report struct {
	// Symbols lists every coded symbol, EOS included, in code order.
	Symbols []SymbolReport `json:"symbols"`
	// InputBytes is the number of data bytes the key was counted from.
	InputBytes uint64 `json:"input_bytes"`
	// MaxCodeLength is the depth of the tree.
	MaxCodeLength int `json:"max_code_length"`
	// PayloadBits counts every code bit, the EOS code included.
	PayloadBits uint64 `json:"payload_bits"`
	// PayloadBytes is the packed payload size.
	PayloadBytes int `json:"payload_bytes"`
	// KeyBytes is the size of the key text.
	KeyBytes int `json:"key_bytes"`
	// KeyCompression compares the archive key section codecs on this key.
	KeyCompression []KeyCompressionReport `json:"key_compression"`
}

var reportCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// Inspect rebuilds the tree of key and reports every symbol's count and code,
// the payload size it implies and how well the key compresses.
func Inspect(key []byte) (*Report, error) {
	ft, err := keyfile.Deserialize(key)
	if err != nil {
		return nil, err
	}
	defer ft.Destroy()

	tree := huffman.BuildTree(ft)
	defer tree.Release()

	prefixes, maxLen := huffman.DerivePrefixes(tree)
	defer prefixes.Destroy()

	r := &Report{
		Symbols:       make([]SymbolReport, 0, prefixes.Len()),
		MaxCodeLength: maxLen,
		KeyBytes:      len(key),
	}

	for sym, code := range prefixes.All() {
		count := ft.Count(sym)
		sr := SymbolReport{
			Symbol: sym.String(),
			Byte:   -1,
			Count:  count,
			Code:   string(code),
			Bits:   count * uint64(len(code)),
		}
		if sym.IsData() {
			sr.Byte = int(sym.Byte())
			r.InputBytes += count
		}
		r.PayloadBits += sr.Bits
		r.Symbols = append(r.Symbols, sr)
	}
	if r.PayloadBits > 0 {
		r.PayloadBytes = bitpack.PackedSize(int(r.PayloadBits))
	}

	for _, compression := range reportCompressions {
		_, stats, err := compress.Measure(compression, key)
		if err != nil {
			return nil, fmt.Errorf("measure key compression: %w", err)
		}
		r.KeyCompression = append(r.KeyCompression, KeyCompressionReport{
			Algorithm: compression.String(),
			Size:      stats.CompressedSize,
			Ratio:     stats.CompressionRatio(),
		})
	}

	return r, nil
}

// JSON renders the report as JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.ConfigDefault.Marshal(r)
}

// WriteJSON streams the report as JSON to w.
func (r *Report) WriteJSON(w io.Writer) error {
	stream := json.ConfigDefault.BorrowStream(w)
	stream.WriteVal(r)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return err
}
