package coalesce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMappingOwnerOf(t *testing.T) {
	m := NewMapping(5, []uint32{0, 1, 3, 4})
	require.Equal(t, uint32(0), m.OwnerOf(0))
	require.Equal(t, uint32(1), m.OwnerOf(1))
	require.Equal(t, uint32(1), m.OwnerOf(2))
	require.Equal(t, uint32(2), m.OwnerOf(3))
	require.Equal(t, uint32(3), m.OwnerOf(4))
	require.Equal(t, 4, m.NumPostShufflePartitions())
}

func TestMappingEqualIsStructural(t *testing.T) {
	a := NewMapping(5, []uint32{0, 2})
	b := NewMapping(5, []uint32{0, 2})
	c := NewMapping(5, []uint32{0, 1})
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
}
