// Package keyfile reads and writes the persisted frequency table (the key) of an
// hfm stream.
//
// A key is a sequence of records, one per data symbol, in frequency table order:
//
//	<symbol-byte>:<count-decimal>;
//
// The symbol is the raw byte itself, so ':' ';' and digits are valid symbols. The
// end-of-stream entry is never written; Deserialize appends it after the last
// record so the rebuilt table produces the same tree as the encoder's.
//
// Serialize emits no whitespace. The parser tolerates whitespace between records:
// a whitespace byte at a record start is a separator unless it is followed by ':'
// and a digit, in which case it is the symbol of that record.
package keyfile

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/arloliu/hfm/errs"
	"github.com/arloliu/hfm/huffman"
	"github.com/arloliu/hfm/internal/pool"
)

const (
	fieldSep  = ':'
	recordEnd = ';'
)

// Serialize renders the data entries of ft as key text. EOS is skipped. A nil or
// empty table yields an empty key.
func Serialize(ft *huffman.FrequencyTable) []byte {
	if ft == nil || ft.Len() == 0 {
		return []byte{}
	}

	bb := pool.GetKeyBuffer()
	defer pool.PutKeyBuffer(bb)

	appendRecords(bb, ft)

	return bb.Clone()
}

// Write writes the key text of ft to w.
func Write(w io.Writer, ft *huffman.FrequencyTable) error {
	if ft == nil || ft.Len() == 0 {
		return nil
	}

	bb := pool.GetKeyBuffer()
	defer pool.PutKeyBuffer(bb)

	appendRecords(bb, ft)
	if _, err := bb.WriteTo(w); err != nil {
		return fmt.Errorf("write key: %w", err)
	}

	return nil
}

func appendRecords(bb *pool.ByteBuffer, ft *huffman.FrequencyTable) {
	// a record is at most 1 + 1 + 20 + 1 bytes
	bb.Grow(ft.Len() * 23)

	var digits [20]byte
	for sym, count := range ft.Entries() {
		if !sym.IsData() {
			continue
		}
		bb.B = append(bb.B, sym.Byte(), fieldSep)
		bb.B = append(bb.B, strconv.AppendUint(digits[:0], count, 10)...)
		bb.B = append(bb.B, recordEnd)
	}
}

// Deserialize parses key text into a frequency table, preserving record order and
// appending EOS. An empty key (or one holding only whitespace) yields an empty
// table without EOS.
//
// Returns errs.ErrMalformedKey for text that does not follow the record grammar,
// zero or overflowing counts, counts whose sum overflows, and duplicate symbols.
func Deserialize(data []byte) (*huffman.FrequencyTable, error) {
	ft := huffman.NewFrequencyTable()

	i := 0
	for i < len(data) {
		c := data[i]
		if isSpace(c) && !startsRecord(data, i) {
			i++
			continue
		}

		if i+1 >= len(data) || data[i+1] != fieldSep {
			return nil, fmt.Errorf("%w: offset %d: expected ':' after symbol", errs.ErrMalformedKey, i)
		}

		start := i + 2
		end := start
		for end < len(data) && isDigit(data[end]) {
			end++
		}
		if end == start {
			return nil, fmt.Errorf("%w: offset %d: missing count", errs.ErrMalformedKey, start)
		}
		if end >= len(data) || data[end] != recordEnd {
			return nil, fmt.Errorf("%w: offset %d: expected ';' after count", errs.ErrMalformedKey, end)
		}

		count, err := strconv.ParseUint(string(data[start:end]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: offset %d: %w", errs.ErrMalformedKey, start, err)
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: offset %d: zero count for symbol %s", errs.ErrMalformedKey, start, huffman.Symbol(c))
		}
		// the total must leave room for the end-of-stream count
		if count > math.MaxUint64-1-ft.Total() {
			return nil, fmt.Errorf("%w: offset %d: counts overflow total at symbol %s", errs.ErrMalformedKey, start, huffman.Symbol(c))
		}
		if !ft.Insert(huffman.Symbol(c), count) {
			return nil, fmt.Errorf("%w: offset %d: duplicate symbol %s", errs.ErrMalformedKey, i, huffman.Symbol(c))
		}

		i = end + 1
	}

	if ft.Len() == 0 {
		return ft, nil
	}

	return ft.WithEOS(), nil
}

// Read reads the whole key from r and parses it.
func Read(r io.Reader) (*huffman.FrequencyTable, error) {
	bb := pool.GetKeyBuffer()
	defer pool.PutKeyBuffer(bb)

	if _, err := io.Copy(bb, r); err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}

	return Deserialize(bb.Bytes())
}

// startsRecord reports whether the byte at i is the symbol of a record, that is
// followed by ':' and a digit.
func startsRecord(data []byte, i int) bool {
	return i+2 < len(data) && data[i+1] == fieldSep && isDigit(data[i+2])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
