package hashtable

import "iter"

// Set is a keys-only view over the same engine as Map. It shares the probe
// algorithm, resize policy and locking discipline; only the value slot is
// degenerate.
type Set[K comparable] struct {
	m Map[K, struct{}]
}

// NewSet returns a set with at least the given capacity, rounded up to a
// power of two. A capacity of zero or less selects the default.
func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *Set[K] {
	s := &Set[K]{}
	s.m.init(capacity, opts...)

	return s
}

// Add inserts the key. Adding a present key is a no-op.
func (s *Set[K]) Add(key K) error {
	return s.m.Set(key, struct{}{})
}

// Has reports whether the key is in the set.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.m.Get(key)
	return ok
}

// Delete removes the key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	return s.m.Delete(key)
}

// Clear removes every key, retaining the capacity.
func (s *Set[K]) Clear() {
	s.m.Clear()
}

// Reserve grows the set so it holds at least capacity slots.
func (s *Set[K]) Reserve(capacity int) error {
	return s.m.Reserve(capacity)
}

// Close releases every key and frees the backing storage.
func (s *Set[K]) Close() {
	s.m.Close()
}

// Len returns the number of keys.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// Stats returns a snapshot of the underlying table counters.
func (s *Set[K]) Stats() Stats {
	return s.m.Stats()
}

// All returns a single-use sequence of the keys. The iteration caveats of
// Map.All apply.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
