package hashtable

import "errors"

var (
	// ErrClosed is returned by Set and Reserve after Close.
	ErrClosed = errors.New("hashtable: map is closed")

	// ErrCapacityOverflow is returned when growing the table would exceed
	// the addressable slot count. The map is left unchanged.
	ErrCapacityOverflow = errors.New("hashtable: capacity overflow")

	// ErrTableFull is returned when an insert scans the whole table without
	// finding a free slot. The growth policy keeps this unreachable under
	// normal operation.
	ErrTableFull = errors.New("hashtable: table is full")
)
