package store

import (
	"testing"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/voletra/cachetrack/types"
)

func TestStore(t *testing.T) {
	t.Parallel()

	ftt.Run(`basics`, t, func(t *ftt.Test) {
		s := New(0, nil)

		t.Run(`miss then hit`, func(t *ftt.Test) {
			_, ok := s.Get("part_1_0")
			assert.Loosely(t, ok, should.BeFalse)

			s.Put("part_1_0", []types.Record{1, 2, 3})
			records, ok := s.Get("part_1_0")
			assert.Loosely(t, ok, should.BeTrue)
			assert.Loosely(t, records, should.Match([]types.Record{1, 2, 3}))
			assert.Loosely(t, s.Len(), should.Equal(1))
		})

		t.Run(`returned slice is the caller's to mutate`, func(t *ftt.Test) {
			s.Put("part_1_0", []types.Record{1, 2, 3})
			records, _ := s.Get("part_1_0")
			records[0] = 99

			again, _ := s.Get("part_1_0")
			assert.Loosely(t, again, should.Match([]types.Record{1, 2, 3}))
		})

		t.Run(`delete`, func(t *ftt.Test) {
			s.Put("part_1_0", []types.Record{1})
			assert.Loosely(t, s.Delete("part_1_0"), should.BeTrue)
			assert.Loosely(t, s.Delete("part_1_0"), should.BeFalse)
			assert.Loosely(t, s.Contains("part_1_0"), should.BeFalse)
		})
	})

	ftt.Run(`LRU eviction`, t, func(t *ftt.Test) {
		var evicted []types.Key
		s := New(2, func(key types.Key) { evicted = append(evicted, key) })

		s.Put("a", []types.Record{1})
		s.Put("b", []types.Record{2})

		t.Run(`least recently used goes first`, func(t *ftt.Test) {
			// touch "a" so "b" is the eviction candidate
			_, ok := s.Get("a")
			assert.Loosely(t, ok, should.BeTrue)

			s.Put("c", []types.Record{3})
			assert.Loosely(t, evicted, should.Match([]types.Key{"b"}))
			assert.Loosely(t, s.Contains("a"), should.BeTrue)
			assert.Loosely(t, s.Contains("c"), should.BeTrue)
			assert.Loosely(t, s.Len(), should.Equal(2))
		})

		t.Run(`replacement does not evict`, func(t *ftt.Test) {
			s.Put("b", []types.Record{2, 2})
			assert.Loosely(t, evicted, should.BeEmpty)
			assert.Loosely(t, s.Len(), should.Equal(2))
		})

		t.Run(`explicit delete fires no callback`, func(t *ftt.Test) {
			assert.Loosely(t, s.Delete("a"), should.BeTrue)
			assert.Loosely(t, evicted, should.BeEmpty)
		})
	})

	ftt.Run(`eviction callback may reenter the store`, t, func(t *ftt.Test) {
		var s *Store
		var seen []types.Key
		s = New(1, func(key types.Key) {
			// runs outside the lock, so this must not deadlock
			seen = append(seen, key)
			s.Contains(key)
		})

		s.Put("a", []types.Record{1})
		s.Put("b", []types.Record{2})
		assert.Loosely(t, seen, should.Match([]types.Key{"a"}))
	})
}
