package huffman

import "sync"

// DefaultTreeCacheSize bounds the number of trees a TreeCache keeps by default.
const DefaultTreeCacheSize = 64

type cachedTree struct {
	table *FrequencyTable
	tree  *Tree
}

// TreeCache keeps built trees keyed by the fingerprint of their frequency table, so
// repeated decodes with the same key skip tree construction.
//
// Cached trees are shared and must be treated as read-only; Release is a no-op on
// them. TreeCache is safe for concurrent use.
type TreeCache struct {
	mu    sync.RWMutex
	trees map[uint64]cachedTree
	limit int
}

// NewTreeCache creates a cache holding at most limit trees. A non-positive limit
// selects DefaultTreeCacheSize.
func NewTreeCache(limit int) *TreeCache {
	if limit <= 0 {
		limit = DefaultTreeCacheSize
	}

	return &TreeCache{
		trees: make(map[uint64]cachedTree),
		limit: limit,
	}
}

// Get returns the tree for ft, building and caching it on a miss. The boolean
// reports a cache hit. A fingerprint collision with a different table is treated
// as a miss and the newer table replaces the cached one.
func (c *TreeCache) Get(ft *FrequencyTable) (*Tree, bool) {
	if ft == nil || ft.Len() == 0 {
		return nil, false
	}

	key := ft.Fingerprint()

	c.mu.RLock()
	entry, ok := c.trees[key]
	c.mu.RUnlock()
	if ok && entry.table.Equal(ft) {
		return entry.tree, true
	}

	tree := BuildTree(ft)
	tree.shared = true

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.trees) >= c.limit {
		// evict an arbitrary entry
		for k := range c.trees {
			delete(c.trees, k)
			break
		}
	}
	c.trees[key] = cachedTree{table: ft.Clone(), tree: tree}

	return tree, false
}

// Len returns the number of cached trees.
func (c *TreeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.trees)
}

// Purge drops every cached tree.
func (c *TreeCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.trees)
}
