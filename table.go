package hashtable

import (
	"hash/maphash"
	"math"
)

const defaultCapacity = 16

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotDeleted
)

// slot is a single entry in the backing array. Deleted slots (tombstones)
// hold no key or value anymore, only the state byte, so probe chains that
// pass through them stay intact.
type slot[K comparable, V any] struct {
	key   K
	value V
	state slotState
}

// table is the unlocked open-addressing engine: a contiguous slot array with
// linear probing and lazy deletion. All synchronization lives in Map.
type table[K comparable, V any] struct {
	slots []slot[K, V]

	// live + dead never exceeds len(slots). dead counts tombstones; a
	// rehash always resets it to zero.
	live int
	dead int

	hash  HashFunc[K]
	equal EqualFunc[K]

	keyFinalizer   func(K)
	valueFinalizer func(V)
	valueCloner    func(V) V

	zeroV V
}

// normalizeCapacity rounds a requested capacity up to a power of two that is
// still representable as a slice length. Zero or negative selects the
// default.
func normalizeCapacity(capacity int) int {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if capacity > math.MaxInt/2 {
		capacity = math.MaxInt/2 + 1
	}

	return int(NextPowerOf2(uint64(capacity)))
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	t.slots = make([]slot[K, V], normalizeCapacity(capacity))

	for _, opt := range opts {
		opt(t)
	}

	if t.hash == nil {
		t.hash = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
	if t.equal == nil {
		t.equal = func(a, b K) bool { return a == b }
	}
}

func (t *table[K, V]) get(key K) (V, bool) {
	if len(t.slots) == 0 {
		return t.zeroV, false
	}

	mask := len(t.slots) - 1
	idx := int(t.hash(key) & uint64(mask))

	// Bounded by capacity so a degenerate hash function cannot spin forever.
	for range t.slots {
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			return t.zeroV, false
		case slotOccupied:
			if t.equal(s.key, key) {
				if t.valueCloner != nil {
					return t.valueCloner(s.value), true
				}
				return s.value, true
			}
		}

		idx = (idx + 1) & mask
	}

	return t.zeroV, false
}

func (t *table[K, V]) set(key K, value V) error {
	// Resize before probing: the load check counts the incoming entry so
	// the load factor stays at or below 3/4 once set returns. Tombstone
	// pressure alone gets a same-size rehash instead — sweeping the
	// tombstones out relieves the probe chains without growing, and only
	// genuine load doubles the table.
	if (t.live+t.dead+1)*4 > len(t.slots)*3 {
		if err := t.grow(); err != nil {
			return err
		}
	} else if t.dead*2 > t.live {
		t.rehash(len(t.slots))
	}

	var (
		mask    = len(t.slots) - 1
		idx     = int(t.hash(key) & uint64(mask))
		reclaim = -1
	)

	for range t.slots {
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			if reclaim >= 0 {
				// Reuse the earliest tombstone on the path instead of
				// extending the chain.
				s = &t.slots[reclaim]
				t.dead--
			}
			s.key = key
			s.value = value
			s.state = slotOccupied
			t.live++

			return nil
		case slotOccupied:
			if t.equal(s.key, key) {
				if t.valueFinalizer != nil {
					t.valueFinalizer(s.value)
				}
				s.value = value

				return nil
			}
		case slotDeleted:
			if reclaim < 0 {
				reclaim = idx
			}
		}

		idx = (idx + 1) & mask
	}

	// Full scan without an Empty slot. The growth policy keeps this
	// unreachable, but a remembered tombstone still makes the insert valid.
	if reclaim >= 0 {
		s := &t.slots[reclaim]
		s.key = key
		s.value = value
		s.state = slotOccupied
		t.live++
		t.dead--

		return nil
	}

	return ErrTableFull
}

func (t *table[K, V]) delete(key K) bool {
	if len(t.slots) == 0 {
		return false
	}

	mask := len(t.slots) - 1
	idx := int(t.hash(key) & uint64(mask))

	for range t.slots {
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			return false
		case slotOccupied:
			if t.equal(s.key, key) {
				if t.keyFinalizer != nil {
					t.keyFinalizer(s.key)
				}
				if t.valueFinalizer != nil {
					t.valueFinalizer(s.value)
				}
				// Drop the references so the GC can reclaim them; only the
				// tombstone state survives.
				*s = slot[K, V]{state: slotDeleted}
				t.live--
				t.dead++

				return true
			}
		}

		idx = (idx + 1) & mask
	}

	return false
}

func (t *table[K, V]) clear() {
	for i := range t.slots {
		s := &t.slots[i]
		if s.state == slotOccupied {
			if t.keyFinalizer != nil {
				t.keyFinalizer(s.key)
			}
			if t.valueFinalizer != nil {
				t.valueFinalizer(s.value)
			}
		}
		t.slots[i] = slot[K, V]{}
	}

	t.live = 0
	t.dead = 0
}

func (t *table[K, V]) reserve(capacity int) error {
	if capacity < t.live+t.dead {
		capacity = t.live + t.dead
	}
	if capacity > math.MaxInt/2 {
		return ErrCapacityOverflow
	}

	capacity = int(NextPowerOf2(uint64(capacity)))
	if capacity <= len(t.slots) {
		return nil
	}

	t.rehash(capacity)

	return nil
}

func (t *table[K, V]) grow() error {
	if len(t.slots) > math.MaxInt/2 {
		return ErrCapacityOverflow
	}

	t.rehash(len(t.slots) * 2)

	return nil
}

// rehash rebuilds the slot array at the given power-of-two capacity. Only
// Occupied slots migrate; every retained key is distinct, so first-Empty
// placement needs no comparisons. Tombstones are discarded wholesale.
func (t *table[K, V]) rehash(capacity int) {
	fresh := make([]slot[K, V], capacity)
	mask := capacity - 1

	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotOccupied {
			continue
		}

		idx := int(t.hash(s.key) & uint64(mask))
		for fresh[idx].state == slotOccupied {
			idx = (idx + 1) & mask
		}
		fresh[idx] = *s
	}

	t.slots = fresh
	t.dead = 0
}

// release finalizes every live entry and drops the backing array. The table
// is unusable afterwards.
func (t *table[K, V]) release() {
	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotOccupied {
			continue
		}
		if t.keyFinalizer != nil {
			t.keyFinalizer(s.key)
		}
		if t.valueFinalizer != nil {
			t.valueFinalizer(s.value)
		}
	}

	t.slots = nil
	t.live = 0
	t.dead = 0
}
