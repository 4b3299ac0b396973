package huffman

import (
	"iter"
	"strconv"

	"github.com/arloliu/hfm/container"
	"github.com/arloliu/hfm/internal/pool"
)

// Code is a prefix code written as '0' (left edge) and '1' (right edge) characters.
type Code string

// PrefixEntry associates a symbol with its code.
type PrefixEntry = container.Pair[Symbol, Code]

// PrefixTable maps every symbol of a tree to its code, in depth-first leaf order.
// Codes are immutable once recorded.
type PrefixTable struct {
	entries *container.Sequence[*PrefixEntry]
	codes   [AlphabetSize]Code
	present [AlphabetSize]bool
}

var pathPool = pool.NewSlicePool[byte]()

// DerivePrefixes walks tree in pre-order and records the path to each leaf. It
// returns the table and the maximum code length, which equals the tree depth.
//
// A tree made of a single leaf yields the empty code for its symbol. A nil tree
// yields an empty table and length 0.
func DerivePrefixes(tree *Tree) (*PrefixTable, int) {
	pt := &PrefixTable{
		entries: container.NewSequence(
			container.WithPrinter(func(e *PrefixEntry) string { return e.String() }),
		),
	}
	if tree == nil || tree.Root() == container.NoNode {
		return pt, 0
	}

	depth := tree.Depth()
	path, cleanup := pathPool.Get(depth + 1)
	defer cleanup()

	var walk func(n container.NodeID, d int)
	walk = func(n container.NodeID, d int) {
		if sym, ok := tree.Symbol(n); ok {
			// string conversion copies the shared path buffer
			pt.add(sym, Code(path[:d]))
			return
		}
		path[d] = '0'
		walk(tree.Left(n), d+1)
		path[d] = '1'
		walk(tree.Right(n), d+1)
	}
	walk(tree.Root(), 0)

	return pt, depth
}

func (pt *PrefixTable) add(sym Symbol, code Code) {
	if pt.present[sym] {
		return
	}
	pt.present[sym] = true
	pt.codes[sym] = code
	pt.entries.Append(container.NewPair(sym, code,
		container.WithKeyPrinter[Symbol, Code](Symbol.String),
		container.WithValuePrinter[Symbol](func(c Code) string { return strconv.Quote(string(c)) }),
	))
}

// Code returns the code of sym.
func (pt *PrefixTable) Code(sym Symbol) (Code, bool) {
	if sym >= AlphabetSize || !pt.present[sym] {
		return "", false
	}

	return pt.codes[sym], true
}

// Lookup finds the entry of sym by linear scan; nil when absent.
func (pt *PrefixTable) Lookup(sym Symbol) *PrefixEntry {
	e, _ := container.FindByKey(pt.entries, sym, container.Equal[Symbol])
	return e
}

// Len returns the number of coded symbols.
func (pt *PrefixTable) Len() int {
	return pt.entries.Len()
}

// All iterates over symbol/code pairs in depth-first leaf order.
func (pt *PrefixTable) All() iter.Seq2[Symbol, Code] {
	return func(yield func(Symbol, Code) bool) {
		for e := range pt.entries.Values() {
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}

// Destroy releases the entries.
func (pt *PrefixTable) Destroy() {
	pt.entries.Destroy()
	pt.codes = [AlphabetSize]Code{}
	pt.present = [AlphabetSize]bool{}
}

func (pt *PrefixTable) String() string {
	return pt.entries.String()
}
