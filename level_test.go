package tiercache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	t.Run("PutWithinCapacity", func(t *testing.T) {
		l := newLevel[string, int](2, PolicyLRU)

		_, evicted := l.put("a", 1)
		assert.False(t, evicted)
		_, evicted = l.put("b", 2)
		assert.False(t, evicted)
		assert.Equal(t, 2, l.len())
	})

	t.Run("PutAtCapacityEvictsExactlyOne", func(t *testing.T) {
		l := newLevel[string, int](2, PolicyLRU)
		l.put("a", 1)
		l.put("b", 2)

		ev, evicted := l.put("c", 3)
		require.True(t, evicted)
		assert.Equal(t, "a", ev.key)
		assert.Equal(t, 1, ev.value)
		assert.Equal(t, 2, l.len())
	})

	t.Run("OverwriteNeverEvicts", func(t *testing.T) {
		l := newLevel[string, int](2, PolicyLRU)
		l.put("a", 1)
		l.put("b", 2)

		_, evicted := l.put("a", 10)
		assert.False(t, evicted)
		assert.Equal(t, 2, l.len())

		v, ok := l.get("a")
		require.True(t, ok)
		assert.Equal(t, 10, v)
	})

	t.Run("CapacityInvariant", func(t *testing.T) {
		for _, policy := range []Policy{PolicyLRU, PolicyLFU} {
			t.Run(policy.String(), func(t *testing.T) {
				l := newLevel[int, int](3, policy)
				for i := 0; i < 20; i++ {
					l.put(i, i)
					assert.LessOrEqual(t, l.len(), 3)
				}
			})
		}
	})

	t.Run("GetDoesNotReachLower", func(t *testing.T) {
		upper := newLevel[string, int](1, PolicyLRU)
		lower := newLevel[string, int](1, PolicyLRU)
		upper.lower.Store(lower)
		lower.put("a", 1)

		_, ok := upper.get("a")
		assert.False(t, ok, "a level resolves misses itself, never via its neighbor")
	})

	t.Run("Stats", func(t *testing.T) {
		l := newLevel[string, int](2, PolicyLFU)
		l.put("a", 1)
		l.get("a")
		l.get("missing")

		st := l.stats()
		assert.Equal(t, 2, st.Capacity)
		assert.Equal(t, 1, st.Size)
		assert.Equal(t, PolicyLFU, st.Policy)
		assert.Equal(t, int64(1), st.Hits)
		assert.Equal(t, int64(1), st.Misses)
	})

	t.Run("SnapshotDoesNotTouchRecency", func(t *testing.T) {
		l := newLevel[string, int](2, PolicyLRU)
		l.put("a", 1)
		l.put("b", 2)
		l.get("a") // b is now the LRU victim

		for i := 0; i < 5; i++ {
			l.snapshot()
		}

		ev, evicted := l.put("c", 3)
		require.True(t, evicted)
		assert.Equal(t, "b", ev.key)
	})
}

func BenchmarkLevelPut(b *testing.B) {
	for _, policy := range []Policy{PolicyLRU, PolicyLFU} {
		b.Run(policy.String(), func(b *testing.B) {
			l := newLevel[string, int](1024, policy)
			keys := make([]string, 4096)
			for i := range keys {
				keys[i] = fmt.Sprintf("key-%d", i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.put(keys[i%len(keys)], i)
			}
		})
	}
}
