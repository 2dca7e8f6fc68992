package hashtable

// Stats is a point-in-time snapshot of the table counters.
type Stats struct {
	// Size is the number of live entries.
	Size int
	// Tombstones is the number of deleted-but-unreclaimed slots.
	Tombstones int
	// Capacity is the total slot count.
	Capacity int
	// LoadFactor is (Size + Tombstones) / Capacity.
	LoadFactor float64
}
