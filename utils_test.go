package hashtable

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		name  string
		input uint64
		want  uint64
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"two", 2, 2},
		{"three", 3, 4},
		{"already a power", 1024, 1024},
		{"just above a power", 1025, 2048},
		{"large", 1<<40 + 1, 1 << 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextPowerOf2(tt.input))
		})
	}
}

func TestCapacityFromSize(t *testing.T) {
	t.Run("int,int", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[int, int]{})

		tests := []struct {
			name string
			size uintptr
			want int
		}{
			{"zero", 0, 0},
			{"less than one slot", sizeOfSlot - 1, 0},
			{"exactly one slot", sizeOfSlot, 1},
			{"ten slots", sizeOfSlot * 10, 10},
			{"1MB", 1024 * 1024, int(1024 * 1024 / sizeOfSlot)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				require.Equal(t, tt.want, CapacityFromSize[int, int](tt.size))
			})
		}
	})

	t.Run("usage with New", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[int, int]{})

		capacity := CapacityFromSize[int, int](sizeOfSlot * 32)
		require.Equal(t, 32, capacity)

		m := New[int, int](capacity)
		require.Equal(t, 32, m.Cap())
	})
}
