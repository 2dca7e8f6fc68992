/*
Package hashtable provides Map, a generic key-value container built on open
addressing with linear probing, and Set, its keys-only counterpart.

A Map stores all entries in one contiguous slot array. Collisions are
resolved by scanning forward (wrapping at the end) until the key or an empty
slot is found. Deletions leave tombstones so probe chains stay intact;
tombstones are reclaimed by later inserts or swept out entirely by a rehash.
Growth doubles the capacity once the load factor (live entries plus
tombstones over capacity) would pass 3/4; when tombstones alone outnumber
half the live entries the table is instead rehashed in place at its current
capacity.

Every map carries one read-write lock: any number of Get calls may run
concurrently, while Set, Delete, Clear, Reserve and Close are serialized
against everything else.

Basic usage:

	m := hashtable.New[string, int](16)

	m.Set("a", 1)
	m.Set("b", 2)

	v, ok := m.Get("a")

	m.Delete("b")

Keys only need to be comparable. Hashing and equality default to the
runtime's maphash and ==, and can be replaced per map:

	m := hashtable.New[string, int](16,
		hashtable.WithHashFunc[string, int](hashtable.HashString),
	)

Maps may own external resources held by their keys and values. Finalizer
callbacks are invoked whenever the map releases an entry (overwrite, delete,
clear, close), and a value cloner makes Get hand out copies instead of
aliases:

	m := hashtable.New[string, *Conn](0,
		hashtable.WithValueFinalizer[string, *Conn](func(c *Conn) { c.Shutdown() }),
	)
*/
package hashtable
