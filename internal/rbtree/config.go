package rbtree

import (
	"fmt"

	s "github.com/prataprc/gosettings"
)

// Defaultsettings for a tree instance.
//
// "arena.capacity" (int64, default: 64),
//		Number of node slots reserved up front. The arena grows past
//		this on demand.
//
// "arena.reuse" (bool, default: true),
//		Hand out slots released by Delete to later Inserts. When false
//		the arena only grows until Reset.
//
// "verify" (bool, default: false),
//		Run Validate after every Insert and Delete and panic on the
//		first violation. Meant for tests and debugging, it turns every
//		mutation into an O(n) operation.
func Defaultsettings() s.Settings {
	return s.Settings{
		"arena.capacity": int64(64),
		"arena.reuse":    true,
		"verify":         false,
	}
}

func (t *RBTree) readsettings(setts s.Settings) {
	t.capacity = setts.Int64("arena.capacity")
	t.reuse = setts.Bool("arena.reuse")
	t.verify = setts.Bool("verify")
	if t.capacity < 0 {
		panic(fmt.Errorf("arena.capacity cannot be negative: %v", t.capacity))
	}
}
