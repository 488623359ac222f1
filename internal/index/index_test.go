package index_test

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlonMell/ostree/internal/index"
	"github.com/AlonMell/ostree/internal/rbtree"
	"github.com/AlonMell/ostree/internal/tools"
)

func TestIndexPutGetDelete(t *testing.T) {
	idx := index.New("test", nil)

	require.NoError(t, idx.Put(10, "ten"))
	require.NoError(t, idx.Put(20, "twenty"))
	assert.Equal(t, 2, idx.Count())
	assert.Equal(t, 2*8+len("ten")+len("twenty"), idx.Bytes())

	err := idx.Put(10, "again")
	assert.ErrorIs(t, err, rbtree.ErrDuplicateKey)
	assert.Equal(t, 2, idx.Count())

	v, ok := idx.Get(10)
	require.True(t, ok)
	assert.Equal(t, "ten", v)

	old, err := idx.Delete(10)
	require.NoError(t, err)
	assert.Equal(t, "ten", old)
	assert.Equal(t, 8+len("twenty"), idx.Bytes())

	_, err = idx.Delete(10)
	assert.ErrorIs(t, err, rbtree.ErrKeyNotFound)

	_, ok = idx.Get(10)
	assert.False(t, ok)
	require.NoError(t, idx.Validate())
}

func TestIndexUpsert(t *testing.T) {
	idx := index.New("upsert", nil)

	replaced, err := idx.Upsert(1, "a")
	require.NoError(t, err)
	assert.False(t, replaced)

	replaced, err = idx.Upsert(1, "bbb")
	require.NoError(t, err)
	assert.True(t, replaced)

	v, _ := idx.Get(1)
	assert.Equal(t, "bbb", v)
	assert.Equal(t, 1, idx.Count())
	assert.Equal(t, 8+3, idx.Bytes())

	_, err = idx.Upsert(-4, "neg")
	assert.ErrorIs(t, err, rbtree.ErrNegativeKey)
}

func TestIndexOrderStatistics(t *testing.T) {
	idx := index.New("order", nil)
	for _, k := range []int{50, 10, 40, 20, 30} {
		require.NoError(t, idx.Put(k, strconv.Itoa(k)))
	}

	assert.Equal(t, []int{10, 20, 30, 40, 50}, idx.Keys())
	assert.Equal(t, []string{"10", "20", "30", "40", "50"}, idx.Values())
	assert.Equal(t, 2, idx.Rank(25))
	assert.Equal(t, 5, idx.Rank(1000))

	k, v, err := idx.Select(3)
	require.NoError(t, err)
	assert.Equal(t, 40, k)
	assert.Equal(t, "40", v)
}

func TestIndexIterator(t *testing.T) {
	idx := index.New("iter", nil)
	for k := 0; k < 20; k += 2 {
		require.NoError(t, idx.Put(k, strconv.Itoa(k)))
	}

	keys, vals, err := tools.Collect(idx.Iterator(tools.KeyRange{Start: 3, End: 9}))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6, 8}, keys)
	assert.Equal(t, []string{"4", "6", "8"}, vals)

	keys, _, err = tools.Collect(idx.Iterator(tools.All))
	require.NoError(t, err)
	assert.Len(t, keys, 10)

	// the read lock is released, writers proceed.
	require.NoError(t, idx.Put(100, "x"))

	it := idx.Iterator(tools.All)
	require.NoError(t, it.Close())
	require.NoError(t, it.Close())
	assert.False(t, it.Next())
}

func TestIndexIteratorBlocksWriters(t *testing.T) {
	idx := index.New("block", nil)
	require.NoError(t, idx.Put(1, "one"))

	it := idx.Iterator(tools.All)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = idx.Put(2, "two")
	}()

	select {
	case <-done:
		t.Fatal("writer proceeded while iterator held the read lock")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, it.Close())
	<-done
	assert.Equal(t, 2, idx.Count())
}

func TestIndexConcurrent(t *testing.T) {
	idx := index.New("concurrent", nil)
	const writers, perWriter = 4, 250

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				k := w*perWriter + i
				assert.NoError(t, idx.Put(k, strconv.Itoa(k)))
				_ = idx.Rank(k)
			}
		}(w)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _, _ = tools.Collect(idx.Iterator(tools.All))
		}
	}()
	wg.Wait()

	assert.Equal(t, writers*perWriter, idx.Count())
	require.NoError(t, idx.Validate())
	for i, k := range idx.Keys() {
		require.Equal(t, i, k)
	}
}

func TestIndexStats(t *testing.T) {
	idx := index.New("stats", map[string]interface{}{"arena.capacity": int64(4)})
	for k := 0; k < 10; k++ {
		require.NoError(t, idx.Put(k, "value"))
	}
	stats := idx.Stats()
	assert.Equal(t, int64(10), stats["n_count"])
	assert.Equal(t, int64(10*(8+5)), stats["bytes"])
	assert.NotEmpty(t, stats["footprint"])
	idx.Log()
}
