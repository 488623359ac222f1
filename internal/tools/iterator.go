// Package tools holds the iteration contracts shared by the tree and
// the index.
package tools

// Iterator is the common interface for all forward iterators over an
// ordered key space.
type Iterator interface {
	// Next advances the iterator to the next key-value pair.
	// Returns false when no more items exist.
	Next() bool

	// Key returns the current key.
	Key() int

	// Value returns the current value.
	Value() string

	// Close releases resources associated with the iterator.
	Close() error
}

// Unbounded disables either end of a KeyRange.
const Unbounded = -1

// KeyRange represents an inclusive range of keys.
type KeyRange struct {
	Start int
	End   int
}

// All covers every key.
var All = KeyRange{Start: Unbounded, End: Unbounded}

// Contains reports whether key lies within the range.
func (kr KeyRange) Contains(key int) bool {
	if kr.Start != Unbounded && key < kr.Start {
		return false
	}
	if kr.End != Unbounded && key > kr.End {
		return false
	}
	return true
}

// RangeIterator wraps an Iterator and filters keys to a specific range.
type RangeIterator struct {
	Iterator
	rang      KeyRange
	exhausted bool
}

// NewRangeIterator creates a new range-limited iterator.
func NewRangeIterator(it Iterator, rang KeyRange) *RangeIterator {
	return &RangeIterator{
		Iterator: it,
		rang:     rang,
	}
}

// Next advances to the next key in the range.
func (r *RangeIterator) Next() bool {
	if r.exhausted {
		return false
	}

	// Advance until we find a key in range or run out of keys
	for r.Iterator.Next() {
		key := r.Key()

		// Stop if we've passed the end of the range
		if r.rang.End != Unbounded && key > r.rang.End {
			r.exhausted = true
			return false
		}

		// Skip keys before the start of the range
		if r.rang.Start != Unbounded && key < r.rang.Start {
			continue
		}

		return true
	}

	r.exhausted = true
	return false
}

// Collect drains it into parallel key and value slices and closes it.
func Collect(it Iterator) ([]int, []string, error) {
	keys, vals := []int{}, []string{}
	for it.Next() {
		keys = append(keys, it.Key())
		vals = append(vals, it.Value())
	}
	return keys, vals, it.Close()
}
