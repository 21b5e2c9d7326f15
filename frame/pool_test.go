package frame

import (
	"pagesim/file"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	assert := assert.New(t)
	idx := NewIndex(2)

	assert.False(idx.Contains(1))
	idx.Insert(1, 0)
	idx.Insert(7, 1)
	assert.True(idx.Contains(1))
	assert.Equal(2, idx.Len())

	slot, ok := idx.Locate(7)
	assert.True(ok)
	assert.Equal(1, slot)

	idx.Remove(7)
	_, ok = idx.Locate(7)
	assert.False(ok, "removed page should not be located")
	assert.Equal(1, idx.Len())

	// removing an absent page is a no-op
	idx.Remove(42)
	assert.Equal(1, idx.Len())
}

func TestPool(t *testing.T) {
	t.Run("rejects invalid frame counts", func(t *testing.T) {
		for _, n := range []int{0, -1, -100} {
			_, err := NewPool(n)
			assert.ErrorIs(t, err, ErrInvalidFrameCount)
		}
	})

	t.Run("starts empty", func(t *testing.T) {
		pool, err := NewPool(3)
		require.NoError(t, err)

		assert.Equal(t, 3, pool.Size())
		assert.True(t, pool.HasEmpty())
		slot, ok := pool.FirstEmpty()
		assert.True(t, ok)
		assert.Equal(t, 0, slot)
		assert.Equal(t, []file.PageId{-1, -1, -1}, pool.Resident())
		for i := 0; i < pool.Size(); i++ {
			assert.True(t, pool.Slot(i).IsEmpty())
		}
	})

	t.Run("install keeps index in sync", func(t *testing.T) {
		pool, err := NewPool(2)
		require.NoError(t, err)

		_, evicted := pool.Install(1, 5)
		assert.False(t, evicted, "installing into an empty slot evicts nothing")
		slot, ok := pool.FirstEmpty()
		assert.True(t, ok)
		assert.Equal(t, 0, slot, "lowest empty slot should be reported")

		_, evicted = pool.Install(0, 6)
		assert.False(t, evicted)
		assert.False(t, pool.HasEmpty())
		_, ok = pool.FirstEmpty()
		assert.False(t, ok)

		victim, evicted := pool.Install(1, 9)
		assert.True(t, evicted)
		assert.Equal(t, file.PageId(5), victim)
		assert.False(t, pool.Contains(5), "evicted page must leave the index")

		slot, ok = pool.Locate(9)
		assert.True(t, ok)
		assert.Equal(t, 1, slot)
		assert.Equal(t, []file.PageId{6, 9}, pool.Resident())
	})

	t.Run("install resets metadata", func(t *testing.T) {
		pool, err := NewPool(1)
		require.NoError(t, err)

		pool.Install(0, 1)
		pool.Slot(0).orderTag = 12
		pool.Slot(0).accessBit = true

		pool.Install(0, 2)
		assert.Equal(t, int64(0), pool.Slot(0).OrderTag())
		assert.False(t, pool.Slot(0).AccessBit())
		page, ok := pool.Slot(0).Page()
		assert.True(t, ok)
		assert.Equal(t, file.PageId(2), page)
	})
}

func TestPolicy(t *testing.T) {
	t.Run("parse canonical names", func(t *testing.T) {
		cases := map[string]Policy{
			"FIFO":    FIFO,
			"LRU":     LRU,
			"OPTIMAL": Optimal,
			"CLOCK":   Clock,
		}
		for name, want := range cases {
			got, err := ParsePolicy(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, got, name)
		}
	})

	t.Run("only exact names are accepted", func(t *testing.T) {
		for _, name := range []string{"fifo", "opt", "Lru", " CLOCK", "BELADY", "SECOND-CHANCE", "OPTIMO", "RELOJ", ""} {
			_, err := ParsePolicy(name)
			assert.ErrorIs(t, err, ErrUnknownPolicy, name)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParsePolicy("RANDOM")
		assert.ErrorIs(t, err, ErrUnknownPolicy)
		assert.ErrorContains(t, err, `"RANDOM"`)
	})

	t.Run("text round trip", func(t *testing.T) {
		for _, p := range Policies() {
			text, err := p.MarshalText()
			require.NoError(t, err)

			var parsed Policy
			require.NoError(t, parsed.UnmarshalText(text))
			assert.Equal(t, p, parsed)
		}
		_, err := Policy(17).MarshalText()
		assert.ErrorIs(t, err, ErrUnknownPolicy)
		assert.Equal(t, "Unknown", Policy(17).String())
	})
}
