package hashtable

// Option configures a Map or Set at construction time.
type Option[K comparable, V any] func(t *table[K, V])

// WithHashFunc overrides the default maphash-based hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hash = f
	}
}

// WithEqualFunc overrides the default == key equality. Keys equal under f
// must produce the same hash.
func WithEqualFunc[K comparable, V any](f EqualFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.equal = f
	}
}

// WithKeyFinalizer registers a callback invoked on a stored key when its
// entry is deleted, cleared, or the map is closed. Without it the map never
// releases keys; their lifetime stays with the caller.
func WithKeyFinalizer[K comparable, V any](f func(K)) Option[K, V] {
	return func(t *table[K, V]) {
		t.keyFinalizer = f
	}
}

// WithValueFinalizer registers a callback invoked on a stored value when it
// is overwritten, deleted, cleared, or the map is closed.
func WithValueFinalizer[K comparable, V any](f func(V)) Option[K, V] {
	return func(t *table[K, V]) {
		t.valueFinalizer = f
	}
}

// WithValueCloner makes Get return f(stored) instead of the stored value
// itself, so callers never alias the map's owned copy.
func WithValueCloner[K comparable, V any](f func(V) V) Option[K, V] {
	return func(t *table[K, V]) {
		t.valueCloner = f
	}
}
