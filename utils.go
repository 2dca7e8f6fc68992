package hashtable

import (
	"math/bits"
	"unsafe"
)

// NextPowerOf2 returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint64) uint64 {
	if v <= 1 {
		return 1
	}

	return uint64(1) << min(bits.Len64(v-1), 63)
}

// CapacityFromSize estimates capacity (number of slots) from the given
// memory size in bytes.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	return int(size / unsafe.Sizeof(slot[K, V]{}))
}
