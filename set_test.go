package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Basic(t *testing.T) {
	s := NewSet[string](16)

	require.NoError(t, s.Add("foo"))
	require.NoError(t, s.Add("bar"))

	assert.True(t, s.Has("foo"))
	assert.True(t, s.Has("bar"))
	assert.False(t, s.Has("baz"))
	assert.Equal(t, 2, s.Len())

	// Adding an existing key changes nothing.
	require.NoError(t, s.Add("foo"))
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Delete("foo"))
	assert.False(t, s.Delete("foo"))
	assert.False(t, s.Has("foo"))
	assert.Equal(t, 1, s.Len())
}

func TestSet_Clear(t *testing.T) {
	s := NewSet[int](16)

	for i := range 10 {
		require.NoError(t, s.Add(i))
	}

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(0))
}

func TestSet_Grow(t *testing.T) {
	s := NewSet[int](4)

	for i := range 1000 {
		require.NoError(t, s.Add(i))
	}

	assert.Equal(t, 1000, s.Len())
	for i := range 1000 {
		require.True(t, s.Has(i))
	}

	stats := s.Stats()
	assert.Equal(t, 1000, stats.Size)
	assert.LessOrEqual(t, stats.LoadFactor, 0.75)
}

func TestSet_All(t *testing.T) {
	s := NewSet[int](16)

	for i := range 5 {
		require.NoError(t, s.Add(i))
	}
	require.True(t, s.Delete(2))

	got := make(map[int]bool)
	for k := range s.All() {
		got[k] = true
	}

	assert.Equal(t, map[int]bool{0: true, 1: true, 3: true, 4: true}, got)
}

func TestSet_Close(t *testing.T) {
	freed := 0
	s := NewSet(16, WithKeyFinalizer[string, struct{}](func(string) {
		freed++
	}))

	require.NoError(t, s.Add("a"))
	require.NoError(t, s.Add("b"))

	s.Close()

	assert.Equal(t, 2, freed)
	assert.ErrorIs(t, s.Add("c"), ErrClosed)
}
