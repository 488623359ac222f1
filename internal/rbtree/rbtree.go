// Package rbtree implements an order-statistics Red-Black Tree
// mapping distinct non-negative integer keys to string values.
//
// Red-Black Tree is a self-balancing binary search tree that guarantees
// O(log n) time complexity for basic operations. Every node additionally
// carries the size of its subtree, which makes Rank and Select O(log n).
//
// Nodes live in a per-tree arena and reference each other by handle.
// Handle zero is the sentinel: it stands for both "no child" and
// "no parent", is always black and has size zero.
//
// A tree is not safe for concurrent use. Callers sharing a tree across
// goroutines must serialize access themselves, see package index.
package rbtree

import (
	"fmt"

	s "github.com/prataprc/gosettings"
)

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// handle addresses a node inside the tree's arena.
type handle uint32

// nilNode is the sentinel handle, slot zero of every arena.
const nilNode handle = 0

type node struct {
	key                 int
	val                 string
	color               color
	left, right, parent handle
	size                int // real nodes in the subtree rooted here
}

// RBTree represents an order-statistics Red-Black Tree instance.
// Use New() or NewWithSettings() to create a new tree instance.
type RBTree struct {
	name  string
	nodes []node   // arena, nodes[nilNode] is the sentinel
	free  []handle // released slots
	root  handle

	// settings
	capacity int64
	reuse    bool
	verify   bool
	setts    s.Settings

	logprefix string

	// cumulative counters, see Stats()
	n_inserts int64
	n_deletes int64
	n_flips   int64
}

// New creates and returns a new empty tree with default settings.
func New() *RBTree {
	return NewWithSettings("default", nil)
}

// NewWithSettings creates a new empty tree named `name`, with `setts`
// applied over Defaultsettings().
func NewWithSettings(name string, setts s.Settings) *RBTree {
	t := &RBTree{name: name}
	t.logprefix = fmt.Sprintf("RBTree [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.setts = setts

	t.nodes = make([]node, 1, t.capacity+1)
	t.root = nilNode

	infof("%v started ...\n", t.logprefix)
	t.logarena()
	return t
}

// ID returns the name of this tree.
func (t *RBTree) ID() string {
	return t.name
}

// Size returns the number of keys in the tree.
func (t *RBTree) Size() int {
	return t.nodes[t.root].size
}

// Empty returns true if and only if the tree holds no keys.
func (t *RBTree) Empty() bool {
	return t.root == nilNode
}

// Search returns the value stored under key. The boolean is false if
// key is not present.
func (t *RBTree) Search(key int) (string, bool) {
	n := t.findNode(key)
	if n == nilNode {
		return "", false
	}
	return t.nodes[n].val, true
}

// Exists checks if a key is present in the tree.
func (t *RBTree) Exists(key int) bool {
	return t.findNode(key) != nilNode
}

func (t *RBTree) findNode(key int) handle {
	current := t.root
	for current != nilNode {
		n := &t.nodes[current]
		if key == n.key {
			return current
		} else if key < n.key {
			current = n.left
		} else {
			current = n.right
		}
	}
	return nilNode
}

// Insert adds key with value val while maintaining Red-Black Tree
// properties. It returns the number of color switches performed by
// the fix-up. On failure the count is -1, the error is ErrDuplicateKey
// or ErrNegativeKey, and the tree is left untouched.
func (t *RBTree) Insert(key int, val string) (int, error) {
	if key < 0 {
		return -1, ErrNegativeKey
	}

	parent := nilNode
	current := t.root
	for current != nilNode {
		parent = current
		n := &t.nodes[current]
		switch {
		case key < n.key:
			current = n.left
		case key > n.key:
			current = n.right
		default:
			return -1, ErrDuplicateKey
		}
	}

	// alloc may grow the arena, take no node pointers across it.
	z := t.alloc(key, val, parent)
	t.n_inserts++

	if parent == nilNode {
		t.root = z
		t.nodes[z].color = black
		t.check("insert")
		return 0, nil
	} else if key < t.nodes[parent].key {
		t.nodes[parent].left = z
	} else {
		t.nodes[parent].right = z
	}

	for p := parent; p != nilNode; p = t.nodes[p].parent {
		t.nodes[p].size++
	}

	flips := t.fixInsert(z)
	t.n_flips += int64(flips)
	t.check("insert")
	return flips, nil
}

func (t *RBTree) fixInsert(x handle) int {
	flips := 0
	for t.nodes[t.nodes[x].parent].color == red {
		p := t.nodes[x].parent
		g := t.nodes[p].parent
		if p == t.nodes[g].left {
			y := t.nodes[g].right
			if t.nodes[y].color == red {
				t.paint(p, black, &flips)
				t.paint(y, black, &flips)
				t.paint(g, red, &flips)
				x = g
			} else {
				if x == t.nodes[p].right {
					x = p
					t.leftRotate(x)
					p = t.nodes[x].parent
				}
				t.paint(p, black, &flips)
				t.paint(g, red, &flips)
				t.rightRotate(g)
			}
		} else {
			y := t.nodes[g].left
			if t.nodes[y].color == red {
				t.paint(p, black, &flips)
				t.paint(y, black, &flips)
				t.paint(g, red, &flips)
				x = g
			} else {
				if x == t.nodes[p].left {
					x = p
					t.rightRotate(x)
					p = t.nodes[x].parent
				}
				t.paint(p, black, &flips)
				t.paint(g, red, &flips)
				t.leftRotate(g)
			}
		}
	}
	t.paint(t.root, black, &flips)
	tracef("%v insert fix-up %v flips\n", t.logprefix, flips)
	return flips
}

// paint recolors n and counts the switch only if the color changed.
// The sentinel is never written.
func (t *RBTree) paint(n handle, c color, flips *int) {
	if n == nilNode {
		return
	}
	if t.nodes[n].color != c {
		t.nodes[n].color = c
		*flips++
	}
}

// resize recomputes n's size from its children.
func (t *RBTree) resize(n handle) {
	nd := &t.nodes[n]
	nd.size = t.nodes[nd.left].size + t.nodes[nd.right].size + 1
}

func (t *RBTree) leftRotate(x handle) {
	/*
		Left rotation around node x:
			    Before:               After:
		          P                    P
		          |                    |
		          x                    y
		         / \                  / \
		        A   y       →        x   C
		           / \              / \
		          B   C            A   B
	*/
	nx := &t.nodes[x]
	y := nx.right
	ny := &t.nodes[y]
	nx.right = ny.left
	if ny.left != nilNode {
		t.nodes[ny.left].parent = x
	}
	ny.parent = nx.parent
	if nx.parent == nilNode {
		t.root = y
	} else if x == t.nodes[nx.parent].left {
		t.nodes[nx.parent].left = y
	} else {
		t.nodes[nx.parent].right = y
	}
	ny.left = x
	nx.parent = y

	t.resize(x)
	t.resize(y)
}

func (t *RBTree) rightRotate(y handle) {
	/*
		Right rotation around node y:
		    Before:               After:
		       P                    P
		       |                    |
		       y                    x
		      / \                  / \
		     x   C       →        A   y
		    / \                      / \
		   A   B                    B   C
	*/
	ny := &t.nodes[y]
	x := ny.left
	nx := &t.nodes[x]
	ny.left = nx.right
	if nx.right != nilNode {
		t.nodes[nx.right].parent = y
	}
	nx.parent = ny.parent
	if ny.parent == nilNode {
		t.root = x
	} else if y == t.nodes[ny.parent].right {
		t.nodes[ny.parent].right = x
	} else {
		t.nodes[ny.parent].left = x
	}
	nx.right = y
	ny.parent = x

	t.resize(y)
	t.resize(x)
}

// check runs Validate after a mutation when "verify" is enabled.
func (t *RBTree) check(op string) {
	if !t.verify {
		return
	}
	if err := t.Validate(); err != nil {
		errorf("%v after %v: %v\n", t.logprefix, op, err)
		panic(fmt.Errorf("%v after %v: %w", t.logprefix, op, err))
	}
}
