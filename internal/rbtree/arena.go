package rbtree

import (
	"fmt"
	"math"
	"unsafe"
)

var nodesize = int64(unsafe.Sizeof(node{}))

// alloc hands out a red leaf with size 1 hanging under parent.
func (t *RBTree) alloc(key int, val string, parent handle) handle {
	nd := node{key: key, val: val, color: red, parent: parent, size: 1}
	if t.reuse && len(t.free) > 0 {
		h := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[h] = nd
		return h
	}
	if len(t.nodes) >= math.MaxUint32 {
		panic(fmt.Errorf("%v arena exhausted at %v nodes", t.logprefix, len(t.nodes)))
	}
	t.nodes = append(t.nodes, nd)
	return handle(len(t.nodes) - 1)
}

// release zeroes the slot so that the value can be collected.
func (t *RBTree) release(h handle) {
	t.nodes[h] = node{}
	t.free = append(t.free, h)
}

// Reset drops every key and shrinks the arena back to its configured
// capacity.
func (t *RBTree) Reset() {
	count := t.Size()
	t.nodes = make([]node, 1, t.capacity+1)
	t.free = nil
	t.root = nilNode
	infof("%v reset, dropped %v keys\n", t.logprefix, count)
}

// Clone returns a deep copy of the tree under a new name. Counters are
// carried over.
func (t *RBTree) Clone(name string) *RBTree {
	c := *t
	c.name = name
	c.logprefix = fmt.Sprintf("RBTree [%s]", name)
	c.nodes = make([]node, len(t.nodes), cap(t.nodes))
	copy(c.nodes, t.nodes)
	c.free = append([]handle(nil), t.free...)
	return &c
}

func (t *RBTree) arenafootprint() int64 {
	return int64(cap(t.nodes))*nodesize + int64(cap(t.free))*int64(unsafe.Sizeof(handle(0)))
}
