package hashtable

import "iter"

// Iterator walks the live entries of a map in slot order. The order is
// deterministic for a given table state but otherwise unspecified.
//
// An Iterator is single-pass: once Next reports the end, a fresh one must be
// created to iterate again. No lock is held between Next calls, so mutating
// the map while iterating it is a data race the caller must prevent.
type Iterator[K comparable, V any] struct {
	slots []slot[K, V]
	index int
}

// Iter returns an iterator positioned before the first live entry.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	m.mu.RLock()
	slots := m.slots
	m.mu.RUnlock()

	return &Iterator[K, V]{slots: slots}
}

// Next yields the next live pair, or ok == false at the end of the table.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	for it.index < len(it.slots) {
		s := &it.slots[it.index]
		it.index++

		if s.state == slotOccupied {
			return s.key, s.value, true
		}
	}

	return key, value, false
}

// All returns a single-use range-over-func sequence of the live entries. The
// same caller obligations as Iterator apply.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}
