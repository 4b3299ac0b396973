package huffman

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/arloliu/hfm/container"
	"github.com/arloliu/hfm/internal/hash"
	"github.com/arloliu/hfm/internal/pool"
)

// Entry associates a symbol with its occurrence count.
type Entry = container.Pair[Symbol, uint64]

// FrequencyTable holds at most one Entry per symbol, in first-seen order.
type FrequencyTable struct {
	entries *container.Sequence[*Entry]
	// pos holds index+1 of each symbol's entry, 0 when absent.
	pos   [AlphabetSize]int32
	total uint64
}

func newEntry(sym Symbol, count uint64) *Entry {
	return container.NewPair(sym, count,
		container.WithKeyPrinter[Symbol, uint64](Symbol.String),
		container.WithValuePrinter[Symbol](func(v uint64) string { return strconv.FormatUint(v, 10) }),
	)
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		entries: container.NewSequence(
			container.WithPrinter(func(e *Entry) string { return e.String() }),
		),
	}
}

// CountSymbols counts the bytes of src in a single pass.
func CountSymbols(src []byte) *FrequencyTable {
	ft := NewFrequencyTable()
	ft.count(src)

	return ft
}

// CountReader counts the bytes read from r until EOF.
func CountReader(r io.Reader) (*FrequencyTable, error) {
	ft := NewFrequencyTable()

	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)
	buf := bb.B[:cap(bb.B)]

	for {
		n, err := r.Read(buf)
		ft.count(buf[:n])
		if errors.Is(err, io.EOF) {
			return ft, nil
		}
		if err != nil {
			return nil, fmt.Errorf("count symbols: %w", err)
		}
	}
}

func (ft *FrequencyTable) count(src []byte) {
	for _, b := range src {
		ft.Add(Symbol(b), 1)
	}
}

// Add increments the count of sym by n, appending a new entry on first occurrence.
func (ft *FrequencyTable) Add(sym Symbol, n uint64) {
	if sym >= AlphabetSize || n == 0 {
		return
	}
	ft.total += n
	if p := ft.pos[sym]; p > 0 {
		e, _ := ft.entries.Get(int(p - 1))
		e.SetValue(e.Value() + n)

		return
	}
	ft.entries.Append(newEntry(sym, n))
	ft.pos[sym] = int32(ft.entries.Len())
}

// Insert appends a new entry and reports false if sym is already present, out of
// the alphabet, or count is zero.
func (ft *FrequencyTable) Insert(sym Symbol, count uint64) bool {
	if sym >= AlphabetSize || count == 0 || ft.pos[sym] > 0 {
		return false
	}
	ft.Add(sym, count)

	return true
}

// WithEOS adds the end-of-stream entry with count 1 if it is absent and returns ft.
func (ft *FrequencyTable) WithEOS() *FrequencyTable {
	ft.Insert(EOS, 1)
	return ft
}

// HasEOS reports whether the table holds the end-of-stream entry.
func (ft *FrequencyTable) HasEOS() bool {
	return ft.pos[EOS] > 0
}

// Count returns the count of sym, 0 when absent.
func (ft *FrequencyTable) Count(sym Symbol) uint64 {
	if sym >= AlphabetSize || ft.pos[sym] == 0 {
		return 0
	}
	e, _ := ft.entries.Get(int(ft.pos[sym] - 1))

	return e.Value()
}

// Lookup finds the entry for sym by linear scan, mirroring how prefix tables are
// searched. It returns nil when sym is absent.
func (ft *FrequencyTable) Lookup(sym Symbol) *Entry {
	e, _ := container.FindByKey(ft.entries, sym, container.Equal[Symbol])
	return e
}

// Len returns the number of entries.
func (ft *FrequencyTable) Len() int {
	return ft.entries.Len()
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Entries iterates over symbol/count pairs in table order.
func (ft *FrequencyTable) Entries() iter.Seq2[Symbol, uint64] {
	return func(yield func(Symbol, uint64) bool) {
		for e := range ft.entries.Values() {
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}

// Equal reports whether both tables hold the same entries in the same order.
func (ft *FrequencyTable) Equal(other *FrequencyTable) bool {
	if ft == nil || other == nil {
		return ft == other
	}
	if ft.Len() != other.Len() {
		return false
	}
	for i, e := range ft.entries.All() {
		o, _ := other.entries.Get(i)
		if e.Key() != o.Key() || e.Value() != o.Value() {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of ft.
func (ft *FrequencyTable) Clone() *FrequencyTable {
	out := NewFrequencyTable()
	for sym, count := range ft.Entries() {
		out.Insert(sym, count)
	}

	return out
}

// Fingerprint returns the xxHash64 of the ordered entries. Tables that build the
// same tree have the same fingerprint.
func (ft *FrequencyTable) Fingerprint() uint64 {
	d := hash.NewDigest()
	for sym, count := range ft.Entries() {
		d.WriteUint64(uint64(sym))
		d.WriteUint64(count)
	}

	return d.Sum64()
}

// Destroy releases the entries. The table is empty afterwards.
func (ft *FrequencyTable) Destroy() {
	ft.entries.Destroy()
	ft.pos = [AlphabetSize]int32{}
	ft.total = 0
}

func (ft *FrequencyTable) String() string {
	return ft.entries.String()
}
