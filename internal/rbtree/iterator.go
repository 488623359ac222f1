package rbtree

import (
	"iter"

	"github.com/AlonMell/ostree/internal/tools"
)

var _ tools.Iterator = (*Cursor)(nil)

// InOrder yields every key, value pair in ascending key order. The tree
// must not be mutated while iterating.
func (t *RBTree) InOrder() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if t.root == nilNode {
			return
		}
		for n := t.minimum(t.root); n != nilNode; n = t.successor(n) {
			if !yield(t.nodes[n].key, t.nodes[n].val) {
				return
			}
		}
	}
}

// Cursor walks the tree forward by successor steps. Any Insert or
// Delete on the tree invalidates open cursors.
type Cursor struct {
	tree    *RBTree
	next    handle
	current handle
	closed  bool
}

// Seek returns a cursor positioned before the first key >= key.
func (t *RBTree) Seek(key int) *Cursor {
	return &Cursor{tree: t, next: t.ceiling(key)}
}

// Next advances the cursor. It returns false once the keys are exhausted.
func (c *Cursor) Next() bool {
	if c.closed || c.next == nilNode {
		c.current = nilNode
		return false
	}
	c.current = c.next
	c.next = c.tree.successor(c.current)
	return true
}

// Key returns the current key.
func (c *Cursor) Key() int {
	return c.tree.nodes[c.current].key
}

// Value returns the current value.
func (c *Cursor) Value() string {
	return c.tree.nodes[c.current].val
}

// Close stops the cursor, subsequent Next calls return false.
func (c *Cursor) Close() error {
	c.closed = true
	return nil
}
