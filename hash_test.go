package hashtable

import (
	"hash/maphash"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHashFunc(t *testing.T) {
	v := "foo"
	s := maphash.MakeSeed()

	h1 := MakeDefaultHashFunc[string](s)(v)
	h2 := maphash.Comparable(s, v)

	require.Equal(t, h2, h1)
}

func TestHashString(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("foo"), HashString("foo"))
	require.Equal(t, HashString("foo"), HashBytes([]byte("foo")))
	require.NotEqual(t, HashString("foo"), HashString("bar"))
}

func TestDefaultEqual(t *testing.T) {
	tt := newTable[string, int](16)

	require.True(t, tt.equal("a", "a"))
	require.False(t, tt.equal("a", "b"))
}
