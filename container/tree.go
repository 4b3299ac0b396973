package container

// NodeID references a node inside a Tree arena.
type NodeID int32

// NoNode is the absent child / invalid node reference.
const NoNode NodeID = -1

type treeNode[T any] struct {
	tag         T
	left, right NodeID
	live        bool
}

// TreeOption configures a Tree.
type TreeOption[T any] func(*Tree[T])

// WithTagDestroyer sets the function run on each tag when its node is destroyed.
func WithTagDestroyer[T any](fn func(T)) TreeOption[T] {
	return func(t *Tree[T]) { t.destroy = fn }
}

// Tree is an arena of binary tree nodes. Nodes are addressed by NodeID and own
// their children; a node is a leaf iff both of its children are NoNode.
type Tree[T any] struct {
	nodes   []treeNode[T]
	destroy func(T)
}

// NewTree creates an empty arena. sizeHint preallocates room for that many nodes.
func NewTree[T any](sizeHint int, opts ...TreeOption[T]) *Tree[T] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	t := &Tree[T]{nodes: make([]treeNode[T], 0, sizeHint)}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// NewLeaf allocates a childless node carrying tag.
func (t *Tree[T]) NewLeaf(tag T) NodeID {
	t.nodes = append(t.nodes, treeNode[T]{tag: tag, left: NoNode, right: NoNode, live: true})
	return NodeID(len(t.nodes) - 1)
}

// Len returns the number of live nodes in the arena.
func (t *Tree[T]) Len() int {
	n := 0
	for i := range t.nodes {
		if t.nodes[i].live {
			n++
		}
	}

	return n
}

func (t *Tree[T]) valid(n NodeID) bool {
	return n >= 0 && int(n) < len(t.nodes) && t.nodes[n].live
}

// SetLeft makes child the left child of n.
func (t *Tree[T]) SetLeft(n, child NodeID) {
	if t.valid(n) {
		t.nodes[n].left = child
	}
}

// SetRight makes child the right child of n.
func (t *Tree[T]) SetRight(n, child NodeID) {
	if t.valid(n) {
		t.nodes[n].right = child
	}
}

// Left returns the left child of n, or NoNode.
func (t *Tree[T]) Left(n NodeID) NodeID {
	if !t.valid(n) {
		return NoNode
	}

	return t.nodes[n].left
}

// Right returns the right child of n, or NoNode.
func (t *Tree[T]) Right(n NodeID) NodeID {
	if !t.valid(n) {
		return NoNode
	}

	return t.nodes[n].right
}

// Tag returns the tag of n and whether n is a live node.
func (t *Tree[T]) Tag(n NodeID) (T, bool) {
	if !t.valid(n) {
		var zero T
		return zero, false
	}

	return t.nodes[n].tag, true
}

// IsLeaf reports whether n is a live node without children.
func (t *Tree[T]) IsLeaf(n NodeID) bool {
	return t.valid(n) && t.nodes[n].left == NoNode && t.nodes[n].right == NoNode
}

// Depth returns the height of the subtree rooted at n: 0 for a solitary leaf and
// -1 for NoNode.
func (t *Tree[T]) Depth(n NodeID) int {
	if !t.valid(n) {
		return -1
	}
	l := t.Depth(t.nodes[n].left)
	r := t.Depth(t.nodes[n].right)

	return 1 + max(l, r)
}

// Destroy releases the subtree rooted at n post-order: children first, then the
// node's own tag. Destroyed IDs become invalid.
func (t *Tree[T]) Destroy(n NodeID) {
	if !t.valid(n) {
		return
	}
	node := &t.nodes[n]
	t.Destroy(node.left)
	t.Destroy(node.right)
	if t.destroy != nil {
		t.destroy(node.tag)
	}
	var zero T
	*node = treeNode[T]{tag: zero, left: NoNode, right: NoNode}
}

// Reset drops every node without running the destroyer.
func (t *Tree[T]) Reset() {
	t.nodes = t.nodes[:0]
}
