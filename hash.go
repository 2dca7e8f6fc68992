package hashtable

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a 64-bit hash. Keys that compare equal under the
// map's EqualFunc must hash to the same value.
type HashFunc[K comparable] func(K) uint64

// EqualFunc reports whether two keys are the same. The default is ==.
type EqualFunc[K comparable] func(a, b K) bool

// MakeDefaultHashFunc builds a seed-based hash covering any comparable key.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// HashString hashes a string key with xxHash. Handy as a WithHashFunc
// argument or as a building block for custom struct hashers.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes hashes a byte slice with xxHash.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
