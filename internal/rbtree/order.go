package rbtree

// Min returns the smallest key and its value, or ErrEmptyTree.
func (t *RBTree) Min() (int, string, error) {
	if t.root == nilNode {
		return 0, "", ErrEmptyTree
	}
	n := &t.nodes[t.minimum(t.root)]
	return n.key, n.val, nil
}

// Max returns the largest key and its value, or ErrEmptyTree.
func (t *RBTree) Max() (int, string, error) {
	if t.root == nilNode {
		return 0, "", ErrEmptyTree
	}
	n := &t.nodes[t.maximum(t.root)]
	return n.key, n.val, nil
}

func (t *RBTree) minimum(x handle) handle {
	for t.nodes[x].left != nilNode {
		x = t.nodes[x].left
	}
	return x
}

func (t *RBTree) maximum(x handle) handle {
	for t.nodes[x].right != nilNode {
		x = t.nodes[x].right
	}
	return x
}

// successor returns the in-order successor of x, nilNode for the maximum.
func (t *RBTree) successor(x handle) handle {
	if r := t.nodes[x].right; r != nilNode {
		return t.minimum(r)
	}
	y := t.nodes[x].parent
	for y != nilNode && x == t.nodes[y].right {
		x = y
		y = t.nodes[y].parent
	}
	return y
}

func (t *RBTree) predecessor(x handle) handle {
	if l := t.nodes[x].left; l != nilNode {
		return t.maximum(l)
	}
	y := t.nodes[x].parent
	for y != nilNode && x == t.nodes[y].left {
		x = y
		y = t.nodes[y].parent
	}
	return y
}

// ceiling returns the node with the smallest key >= key.
func (t *RBTree) ceiling(key int) handle {
	found := nilNode
	for n := t.root; n != nilNode; {
		nd := &t.nodes[n]
		switch {
		case key < nd.key:
			found = n
			n = nd.left
		case key > nd.key:
			n = nd.right
		default:
			return n
		}
	}
	return found
}

// Successor returns the smallest key strictly greater than key. key
// itself need not be present.
func (t *RBTree) Successor(key int) (int, string, bool) {
	var succ handle
	if n := t.findNode(key); n != nilNode {
		succ = t.successor(n)
	} else {
		succ = t.ceiling(key)
	}
	if succ == nilNode {
		return 0, "", false
	}
	return t.nodes[succ].key, t.nodes[succ].val, true
}

// Predecessor returns the largest key strictly smaller than key. key
// itself need not be present.
func (t *RBTree) Predecessor(key int) (int, string, bool) {
	pred := nilNode
	for n := t.root; n != nilNode; {
		nd := &t.nodes[n]
		if key > nd.key {
			pred = n
			n = nd.right
		} else {
			n = nd.left
		}
	}
	if pred == nilNode {
		return 0, "", false
	}
	return t.nodes[pred].key, t.nodes[pred].val, true
}

// Rank returns the number of keys in the tree strictly smaller than
// key, whether or not key is present.
func (t *RBTree) Rank(key int) int {
	if t.root == nilNode {
		return 0
	}
	if key > t.nodes[t.maximum(t.root)].key {
		return t.Size()
	}

	last := nilNode
	for n := t.root; n != nilNode; {
		last = n
		nd := &t.nodes[n]
		switch {
		case key < nd.key:
			n = nd.left
		case key > nd.key:
			n = nd.right
		default:
			return t.rankOf(n)
		}
	}
	// search fell off below `last`, which is either the ceiling or the
	// floor of key.
	if key > t.nodes[last].key {
		last = t.successor(last)
	}
	return t.rankOf(last)
}

// rankOf counts the keys smaller than the key held by x.
func (t *RBTree) rankOf(x handle) int {
	r := t.nodes[t.nodes[x].left].size
	for x != t.root {
		p := t.nodes[x].parent
		if x == t.nodes[p].right {
			r += t.nodes[t.nodes[p].left].size + 1
		}
		x = p
	}
	return r
}

// Select returns the entry with exactly i smaller keys in the tree,
// that is the i-th smallest entry counting from zero.
func (t *RBTree) Select(i int) (int, string, error) {
	if i < 0 || i >= t.Size() {
		return 0, "", ErrRankOutOfRange
	}
	n := t.root
	for {
		nd := &t.nodes[n]
		ls := t.nodes[nd.left].size
		switch {
		case i < ls:
			n = nd.left
		case i > ls:
			i -= ls + 1
			n = nd.right
		default:
			return nd.key, nd.val, nil
		}
	}
}

// Keys returns all keys in ascending order, or an empty slice if the
// tree is empty.
func (t *RBTree) Keys() []int {
	keys := make([]int, 0, t.Size())
	if t.root == nilNode {
		return keys
	}
	for n := t.minimum(t.root); n != nilNode; n = t.successor(n) {
		keys = append(keys, t.nodes[n].key)
	}
	return keys
}

// Values returns all values sorted by their respective keys, or an
// empty slice if the tree is empty.
func (t *RBTree) Values() []string {
	vals := make([]string, 0, t.Size())
	if t.root == nilNode {
		return vals
	}
	for n := t.minimum(t.root); n != nilNode; n = t.successor(n) {
		vals = append(vals, t.nodes[n].val)
	}
	return vals
}
