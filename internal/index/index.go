// Package index wraps an order-statistics tree for use from several
// goroutines.
package index

import (
	"fmt"
	"sync"

	humanize "github.com/dustin/go-humanize"
	s "github.com/prataprc/gosettings"

	"github.com/AlonMell/ostree/internal/rbtree"
	"github.com/AlonMell/ostree/internal/tools"
)

// keysize is the accounted cost of a key in Bytes().
const keysize = 8

// Index represents a read-write locked ordered index over rbtree.
type Index struct {
	tree      *rbtree.RBTree
	bytes     int // Approximate size in bytes
	logprefix string
	mu        sync.RWMutex
}

// New creates a new Index instance. `setts` is passed on to the tree.
func New(name string, setts s.Settings) *Index {
	idx := &Index{
		tree:      rbtree.NewWithSettings(name, setts),
		logprefix: fmt.Sprintf("INDEX [%s]", name),
	}
	infof("%v opened\n", idx.logprefix)
	return idx
}

// Put adds a key-value pair. Existing keys are rejected with
// rbtree.ErrDuplicateKey.
func (idx *Index) Put(key int, value string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, err := idx.tree.Insert(key, value); err != nil {
		return fmt.Errorf("put %d: %w", key, err)
	}
	idx.bytes += keysize + len(value)
	return nil
}

// Upsert adds or replaces the value under key. Replacement deletes and
// reinserts the key. Returns true if an older value was replaced.
func (idx *Index) Upsert(key int, value string) (bool, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	oldVal, exists := idx.tree.Search(key)
	if exists {
		if _, err := idx.tree.Delete(key); err != nil {
			return false, fmt.Errorf("upsert %d: %w", key, err)
		}
		idx.bytes -= keysize + len(oldVal)
	}
	if _, err := idx.tree.Insert(key, value); err != nil {
		return false, fmt.Errorf("upsert %d: %w", key, err)
	}
	idx.bytes += keysize + len(value)
	return exists, nil
}

// Get retrieves a value by key.
func (idx *Index) Get(key int) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.tree.Search(key)
}

// Delete removes key and returns the value it held.
func (idx *Index) Delete(key int) (string, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	oldVal, exists := idx.tree.Search(key)
	if !exists {
		return "", fmt.Errorf("delete %d: %w", key, rbtree.ErrKeyNotFound)
	}
	if _, err := idx.tree.Delete(key); err != nil {
		return "", fmt.Errorf("delete %d: %w", key, err)
	}
	idx.bytes -= keysize + len(oldVal)
	return oldVal, nil
}

// Rank returns the number of keys smaller than key.
func (idx *Index) Rank(key int) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.tree.Rank(key)
}

// Select returns the i-th smallest entry, counting from zero.
func (idx *Index) Select(i int) (int, string, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.tree.Select(i)
}

// Count returns the number of entries.
func (idx *Index) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.tree.Size()
}

// Bytes returns the approximate payload size of the index in bytes.
func (idx *Index) Bytes() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.bytes
}

// Keys returns every key in ascending order.
func (idx *Index) Keys() []int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.tree.Keys()
}

// Values returns every value ordered by key.
func (idx *Index) Values() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.tree.Values()
}

// Stats returns tree statistics along with payload accounting.
func (idx *Index) Stats() map[string]interface{} {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	stats := idx.tree.Stats()
	stats["bytes"] = int64(idx.bytes)
	stats["footprint"] = humanize.Bytes(uint64(stats["arena.footprint"].(int64)))
	return stats
}

// Log writes a one line summary of Stats.
func (idx *Index) Log() {
	stats := idx.Stats()
	fmsg := "%v %v entries, payload %v, arena %v, height %v\n"
	infof(fmsg, idx.logprefix, stats["n_count"],
		humanize.Bytes(uint64(stats["bytes"].(int64))),
		stats["footprint"], stats["height"])
}

// Validate checks the tree invariants under the read lock.
func (idx *Index) Validate() error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if err := idx.tree.Validate(); err != nil {
		warnf("%v validate: %v\n", idx.logprefix, err)
		return err
	}
	return nil
}

// Iterator walks the entries within `kr` in key order.
type Iterator struct {
	idx    *Index
	it     tools.Iterator
	mu     sync.Mutex
	closed bool
}

// Iterator creates a new Iterator over `kr`. It holds the read lock
// until Close is called, writers block meanwhile.
func (idx *Index) Iterator(kr tools.KeyRange) *Iterator {
	idx.mu.RLock() // Will be released when Close() is called

	start := kr.Start
	if start == tools.Unbounded {
		start = 0
	}
	return &Iterator{
		idx: idx,
		it:  tools.NewRangeIterator(idx.tree.Seek(start), kr),
	}
}

// Next advances the iterator to the next entry.
func (it *Iterator) Next() bool {
	if it.closed {
		return false
	}
	return it.it.Next()
}

// Key returns the current key.
func (it *Iterator) Key() int {
	return it.it.Key()
}

// Value returns the current value.
func (it *Iterator) Value() string {
	return it.it.Value()
}

// Close releases the read lock held by the iterator.
func (it *Iterator) Close() error {
	it.mu.Lock()
	defer it.mu.Unlock()

	if !it.closed {
		it.closed = true
		it.idx.mu.RUnlock() // Release lock acquired in Iterator()
		return it.it.Close()
	}

	return nil
}
