package hashtable

import "sync"

// Map is a generic hash table using open addressing with linear probing and
// tombstone-based lazy deletion. A single table-wide read-write lock guards
// every operation: lookups run concurrently, mutations are serialized.
//
// Configured callbacks (hash, equality, finalizers, cloner) run with the lock
// held. They must not call back into the same Map and must not block
// indefinitely.
type Map[K comparable, V any] struct {
	mu sync.RWMutex

	// Keeps readers spinning on the lock word off the cache line that
	// holds the hot table fields.
	_ [CacheLineSize]byte

	table[K, V]
}

// New returns a map with at least the given capacity, rounded up to a power
// of two. A capacity of zero or less selects the default (16 slots).
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, opts...)

	return &m
}

// Set inserts the pair or overwrites the value of an existing key. On
// overwrite the previous value is released through the value finalizer and
// the stored key is kept; the caller retains ownership of the key it passed.
//
// Returns ErrClosed after Close, or ErrCapacityOverflow if the required
// growth exceeds the addressable capacity. In both cases the map is
// unchanged and the pair is not stored.
func (m *Map[K, V]) Set(key K, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slots == nil {
		return ErrClosed
	}

	return m.set(key, value)
}

// Get returns the value stored for the key and whether it is present. With a
// value cloner configured the result is a clone; otherwise it aliases the
// stored value, which the caller must not finalize while it remains in the
// map.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.get(key)
}

// Delete removes the key, releasing its key and value through the configured
// finalizers, and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.delete(key)
}

// Clear releases every live entry and resets all slots to empty. The
// capacity is retained.
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear()
}

// Reserve grows the map so it holds at least capacity slots. It never
// shrinks and is a no-op when the current capacity is already sufficient.
func (m *Map[K, V]) Reserve(capacity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slots == nil {
		return ErrClosed
	}

	return m.reserve(capacity)
}

// Close releases every live entry and frees the slot array. It must be the
// last mutation: subsequent Set and Reserve calls return ErrClosed, lookups
// report absent.
func (m *Map[K, V]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.release()
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.live
}

// Cap returns the current slot count.
func (m *Map[K, V]) Cap() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.slots)
}

// Stats returns a snapshot of the table counters.
func (m *Map[K, V]) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	capacity := len(m.slots)
	stats := Stats{
		Size:       m.live,
		Tombstones: m.dead,
		Capacity:   capacity,
	}
	if capacity > 0 {
		stats.LoadFactor = float64(m.live+m.dead) / float64(capacity)
	}

	return stats
}
