// Package store is the per-process partition cache: materialized partition
// contents keyed by (dataset, partition), bounded by an LRU entry budget.
package store

import (
	"container/list"
	"sync"

	"github.com/voletra/cachetrack/types"
)

// EvictCallback is invoked with each key the store evicts under capacity
// pressure. It runs outside the store's lock, so it may call back into the
// store, but it must not block for long: it runs on the evicting caller.
type EvictCallback func(types.Key)

type entry struct {
	key     types.Key
	records []types.Record
}

// Store is a thread-safe LRU cache of materialized partitions.
// There is no cross-process coherence: each process has its own.
type Store struct {
	mu       sync.Mutex
	capacity int
	onEvict  EvictCallback
	entries  map[types.Key]*list.Element
	order    *list.List // front = most recently used
}

// New creates a store holding at most capacity partitions; capacity <= 0
// means unbounded. onEvict may be nil.
func New(capacity int, onEvict EvictCallback) *Store {
	return &Store{
		capacity: capacity,
		onEvict:  onEvict,
		entries:  make(map[types.Key]*list.Element),
		order:    list.New(),
	}
}

// Get returns the cached partition and marks it recently used.
func (s *Store) Get(key types.Key) ([]types.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	s.order.MoveToFront(el)

	// copy the slice so callers cannot reorder cached contents; the records
	// themselves are shared and treated as immutable
	records := el.Value.(*entry).records
	out := make([]types.Record, len(records))
	copy(out, records)
	return out, true
}

// Contains reports presence without disturbing the LRU order.
func (s *Store) Contains(key types.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok
}

// Put inserts or replaces a partition, evicting least recently used entries
// if the store is over capacity. Eviction callbacks fire after the lock is
// released.
func (s *Store) Put(key types.Key, records []types.Record) {
	var evicted []types.Key

	s.mu.Lock()
	if el, ok := s.entries[key]; ok {
		el.Value.(*entry).records = records
		s.order.MoveToFront(el)
	} else {
		s.entries[key] = s.order.PushFront(&entry{key: key, records: records})
		for s.capacity > 0 && len(s.entries) > s.capacity {
			oldest := s.order.Back()
			if oldest == nil {
				break
			}
			e := oldest.Value.(*entry)
			s.order.Remove(oldest)
			delete(s.entries, e.key)
			evicted = append(evicted, e.key)
		}
	}
	s.mu.Unlock()

	if s.onEvict != nil {
		for _, k := range evicted {
			s.onEvict(k)
		}
	}
}

// Delete removes a partition explicitly. No eviction callback fires: the
// caller chose to remove it and can report the drop itself if needed.
func (s *Store) Delete(key types.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.entries[key]
	if !ok {
		return false
	}
	s.order.Remove(el)
	delete(s.entries, key)
	return true
}

// Len returns the number of cached partitions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Keys returns all cached keys in no particular order.
func (s *Store) Keys() []types.Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]types.Key, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}
