package rbtree

import (
	dserrors "github.com/timtadh/data-structures/errors"
)

// VerifyTreeProperties validates Red-Black Tree invariants:
// 1. Root is always black
// 2. Red nodes must have black children
// 3. All paths from node to leaves have same black node count
// 4. Every node's size is its children's sizes plus one
// Returns true if all properties are satisfied
func (t *RBTree) VerifyTreeProperties() bool {
	return t.Validate() == nil
}

// Validate walks the whole tree and returns an error describing the
// first broken invariant, nil if the tree is sound. O(n).
func (t *RBTree) Validate() error {
	if t.nodes[nilNode] != (node{}) {
		return dserrors.Errorf("sentinel modified: %+v", t.nodes[nilNode])
	}
	if t.root != nilNode {
		if t.nodes[t.root].color != black {
			return dserrors.Errorf("root %v is red", t.nodes[t.root].key)
		}
		if t.nodes[t.root].parent != nilNode {
			return dserrors.Errorf("root %v has a parent", t.nodes[t.root].key)
		}
	}

	_, count, err := t.checkSubtree(t.root, -1, -1)
	if err != nil {
		return err
	}
	if live := len(t.nodes) - 1 - len(t.free); count != live {
		return dserrors.Errorf("reachable nodes %v != live arena slots %v", count, live)
	}
	return nil
}

// checkSubtree returns the black height and the node count of the
// subtree at n. Keys must lie strictly within (lo, hi), -1 means
// unbounded.
func (t *RBTree) checkSubtree(n handle, lo, hi int) (int, int, error) {
	if n == nilNode {
		return 1, 0, nil
	}
	nd := &t.nodes[n]

	if nd.key < 0 {
		return 0, 0, dserrors.Errorf("negative key %v", nd.key)
	}
	if (lo >= 0 && nd.key <= lo) || (hi >= 0 && nd.key >= hi) {
		return 0, 0, dserrors.Errorf("key %v outside (%v, %v)", nd.key, lo, hi)
	}
	if nd.color == red && (t.nodes[nd.left].color == red || t.nodes[nd.right].color == red) {
		return 0, 0, dserrors.Errorf("consecutive red at key %v", nd.key)
	}
	for _, child := range []handle{nd.left, nd.right} {
		if child != nilNode && t.nodes[child].parent != n {
			return 0, 0, dserrors.Errorf("key %v: child %v has stale parent",
				nd.key, t.nodes[child].key)
		}
	}

	lblacks, lcount, err := t.checkSubtree(nd.left, lo, nd.key)
	if err != nil {
		return 0, 0, err
	}
	rblacks, rcount, err := t.checkSubtree(nd.right, nd.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lblacks != rblacks {
		return 0, 0, dserrors.Errorf("key %v: unbalanced blacks {%v,%v}", nd.key, lblacks, rblacks)
	}
	if nd.size != lcount+rcount+1 {
		return 0, 0, dserrors.Errorf("key %v: size %v, want %v", nd.key, nd.size, lcount+rcount+1)
	}

	if nd.color == black {
		lblacks++
	}
	return lblacks, lcount + rcount + 1, nil
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *RBTree) Height() int {
	return t.height(t.root)
}

func (t *RBTree) height(n handle) int {
	if n == nilNode {
		return 0
	}
	return 1 + max(t.height(t.nodes[n].left), t.height(t.nodes[n].right))
}

// blackHeight counts black nodes from root down its leftmost path,
// sentinel excluded.
func (t *RBTree) blackHeight() int {
	bh := 0
	for n := t.root; n != nilNode; n = t.nodes[n].left {
		if t.nodes[n].color == black {
			bh++
		}
	}
	return bh
}
