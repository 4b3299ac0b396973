package huffman

import (
	"github.com/arloliu/hfm/container"
)

// Tag is the payload of a tree node. Internal nodes carry no symbol.
type Tag struct {
	Symbol Symbol
	Weight uint64
}

// Tree is a weighted full binary Huffman tree stored in an arena.
//
// Leaves carry symbols; every internal node has exactly two children and a weight
// equal to the sum of its children's weights.
type Tree struct {
	nodes  *container.Tree[Tag]
	root   container.NodeID
	leaves int
	shared bool
}

// BuildTree builds the Huffman tree of ft. It returns nil for an empty table.
//
// Fragments start as one leaf per entry in table order. Each round removes the
// first fragment of minimum weight (left child), then the first fragment of minimum
// weight among the rest (right child), and appends their merge to the fragment list.
func BuildTree(ft *FrequencyTable) *Tree {
	if ft == nil || ft.Len() == 0 {
		return nil
	}

	t := &Tree{
		nodes:  container.NewTree[Tag](2*ft.Len() - 1),
		leaves: ft.Len(),
	}

	frags := container.NewSequence[container.NodeID]()
	defer frags.Destroy()

	for sym, count := range ft.Entries() {
		frags.Append(t.nodes.NewLeaf(Tag{Symbol: sym, Weight: count}))
	}

	for frags.Len() > 1 {
		left, _ := frags.RemoveAt(t.minFragment(frags))
		right, _ := frags.RemoveAt(t.minFragment(frags))

		parent := t.nodes.NewLeaf(Tag{Symbol: noSymbol, Weight: t.Weight(left) + t.Weight(right)})
		t.nodes.SetLeft(parent, left)
		t.nodes.SetRight(parent, right)
		frags.Append(parent)
	}

	t.root, _ = frags.Get(0)

	return t
}

// minFragment returns the index of the first fragment with the lowest weight.
func (t *Tree) minFragment(frags *container.Sequence[container.NodeID]) int {
	best := -1
	var bestWeight uint64
	for i, n := range frags.All() {
		w := t.Weight(n)
		if best < 0 || w < bestWeight {
			best, bestWeight = i, w
		}
	}

	return best
}

// Root returns the root node.
func (t *Tree) Root() container.NodeID {
	return t.root
}

// Left returns the left child of n, or container.NoNode.
func (t *Tree) Left(n container.NodeID) container.NodeID {
	return t.nodes.Left(n)
}

// Right returns the right child of n, or container.NoNode.
func (t *Tree) Right(n container.NodeID) container.NodeID {
	return t.nodes.Right(n)
}

// IsLeaf reports whether n is a leaf.
func (t *Tree) IsLeaf(n container.NodeID) bool {
	return t.nodes.IsLeaf(n)
}

// Symbol returns the symbol of leaf n. The boolean is false for internal nodes.
func (t *Tree) Symbol(n container.NodeID) (Symbol, bool) {
	if !t.nodes.IsLeaf(n) {
		return 0, false
	}
	tag, _ := t.nodes.Tag(n)

	return tag.Symbol, true
}

// Weight returns the weight of n.
func (t *Tree) Weight(n container.NodeID) uint64 {
	tag, _ := t.nodes.Tag(n)
	return tag.Weight
}

// Depth returns the height of the tree: 0 for a single leaf.
func (t *Tree) Depth() int {
	return t.nodes.Depth(t.root)
}

// Leaves returns the number of leaves (distinct symbols).
func (t *Tree) Leaves() int {
	return t.leaves
}

// Walk visits every node in pre-order with its depth. Returning false from fn
// skips the children of that node.
func (t *Tree) Walk(fn func(n container.NodeID, depth int) bool) {
	var walk func(n container.NodeID, depth int)
	walk = func(n container.NodeID, depth int) {
		if n == container.NoNode || !fn(n, depth) {
			return
		}
		walk(t.nodes.Left(n), depth+1)
		walk(t.nodes.Right(n), depth+1)
	}
	walk(t.root, 0)
}

// Release destroys every node. Trees handed out by a TreeCache are shared and
// Release leaves them intact.
func (t *Tree) Release() {
	if t == nil || t.shared {
		return
	}
	t.nodes.Destroy(t.root)
	t.nodes.Reset()
	t.root = container.NoNode
	t.leaves = 0
}
