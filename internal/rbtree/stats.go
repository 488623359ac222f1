package rbtree

import (
	humanize "github.com/dustin/go-humanize"
)

// Stats returns a snapshot of tree shape, arena usage and cumulative
// operation counters.
func (t *RBTree) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_count":         int64(t.Size()),
		"n_inserts":       t.n_inserts,
		"n_deletes":       t.n_deletes,
		"n_flips":         t.n_flips,
		"height":          int64(t.Height()),
		"blackheight":     int64(t.blackHeight()),
		"arena.slots":     int64(len(t.nodes) - 1),
		"arena.free":      int64(len(t.free)),
		"arena.footprint": t.arenafootprint(),
	}
}

func (t *RBTree) logarena() {
	fp := humanize.Bytes(uint64(t.arenafootprint()))
	fmsg := "%v arena %v slots reuse:%v cap %v\n"
	infof(fmsg, t.logprefix, t.capacity, t.reuse, fp)
}
