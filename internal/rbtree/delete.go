package rbtree

// Delete removes key from the tree while maintaining Red-Black Tree
// properties. It returns the number of color switches performed. If key
// doesn't exist the count is -1, the error is ErrKeyNotFound and the
// tree is left untouched.
func (t *RBTree) Delete(key int) (int, error) {
	z := t.findNode(key)
	if z == nilNode {
		return -1, ErrKeyNotFound
	}

	// every strict ancestor of z loses exactly one node.
	for p := t.nodes[z].parent; p != nilNode; p = t.nodes[p].parent {
		t.nodes[p].size--
	}

	flips := 0
	var x, xparent handle
	y := z
	yOriginalColor := t.nodes[y].color

	if t.nodes[z].left == nilNode {
		x = t.nodes[z].right
		xparent = t.nodes[z].parent
		t.transplant(z, x)
	} else if t.nodes[z].right == nilNode {
		x = t.nodes[z].left
		xparent = t.nodes[z].parent
		t.transplant(z, x)
	} else {
		y = t.minimum(t.nodes[z].right)
		yOriginalColor = t.nodes[y].color
		x = t.nodes[y].right
		if t.nodes[y].parent == z {
			xparent = y
		} else {
			xparent = t.nodes[y].parent
			// nodes between z and y lose y.
			for p := xparent; p != z; p = t.nodes[p].parent {
				t.nodes[p].size--
			}
			t.transplant(y, x)
			t.nodes[y].right = t.nodes[z].right
			t.nodes[t.nodes[y].right].parent = y
		}
		t.transplant(z, y)
		t.nodes[y].left = t.nodes[z].left
		t.nodes[t.nodes[y].left].parent = y
		t.nodes[y].size = t.nodes[z].size - 1
		t.paint(y, t.nodes[z].color, &flips)
	}

	t.release(z)
	t.n_deletes++

	if yOriginalColor == black {
		flips += t.fixDelete(x, xparent)
	}
	t.n_flips += int64(flips)
	t.check("delete")
	return flips, nil
}

// transplant replaces the subtree rooted at u with the subtree rooted
// at v in u's parent. Children of v are not touched.
func (t *RBTree) transplant(u, v handle) {
	up := t.nodes[u].parent
	if up == nilNode {
		t.root = v
	} else if u == t.nodes[up].left {
		t.nodes[up].left = v
	} else {
		t.nodes[up].right = v
	}
	if v != nilNode {
		t.nodes[v].parent = up
	}
}

// fixDelete pushes the extra black carried by x up the tree. x may be
// the sentinel, hence its parent is tracked separately in `parent`.
func (t *RBTree) fixDelete(x, parent handle) int {
	flips := 0
	for x != t.root && t.nodes[x].color == black {
		if x == t.nodes[parent].left {
			w := t.nodes[parent].right
			if t.nodes[w].color == red {
				t.paint(w, black, &flips)
				t.paint(parent, red, &flips)
				t.leftRotate(parent)
				w = t.nodes[parent].right
			}
			if t.nodes[t.nodes[w].left].color == black &&
				t.nodes[t.nodes[w].right].color == black {
				t.paint(w, red, &flips)
				x = parent
				parent = t.nodes[x].parent
			} else {
				if t.nodes[t.nodes[w].right].color == black {
					t.paint(t.nodes[w].left, black, &flips)
					t.paint(w, red, &flips)
					t.rightRotate(w)
					w = t.nodes[parent].right
				}
				t.paint(w, t.nodes[parent].color, &flips)
				t.paint(parent, black, &flips)
				t.paint(t.nodes[w].right, black, &flips)
				t.leftRotate(parent)
				x, parent = t.root, nilNode
			}
		} else {
			w := t.nodes[parent].left
			if t.nodes[w].color == red {
				t.paint(w, black, &flips)
				t.paint(parent, red, &flips)
				t.rightRotate(parent)
				w = t.nodes[parent].left
			}
			if t.nodes[t.nodes[w].right].color == black &&
				t.nodes[t.nodes[w].left].color == black {
				t.paint(w, red, &flips)
				x = parent
				parent = t.nodes[x].parent
			} else {
				if t.nodes[t.nodes[w].left].color == black {
					t.paint(t.nodes[w].right, black, &flips)
					t.paint(w, red, &flips)
					t.leftRotate(w)
					w = t.nodes[parent].left
				}
				t.paint(w, t.nodes[parent].color, &flips)
				t.paint(parent, black, &flips)
				t.paint(t.nodes[w].left, black, &flips)
				t.rightRotate(parent)
				x, parent = t.root, nilNode
			}
		}
	}
	t.paint(x, black, &flips)
	tracef("%v delete fix-up %v flips\n", t.logprefix, flips)
	return flips
}
