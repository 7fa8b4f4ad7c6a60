package broadcast

import (
	"testing"

	"github.com/go-sif/shuffleplan"
	"github.com/stretchr/testify/require"
)

func statsOf(total int64) *shuffleplan.MapOutputStatistics {
	return &shuffleplan.MapOutputStatistics{StageID: "s", BytesByPartitionID: []int64{total}}
}

func TestDecideSmallSideZero(t *testing.T) {
	stats := [2]*shuffleplan.MapOutputStatistics{statsOf(50), statsOf(200)}
	require.Equal(t, SideZero, Decide(stats, 100))
}

func TestDecideSmallSideOne(t *testing.T) {
	stats := [2]*shuffleplan.MapOutputStatistics{statsOf(200), statsOf(50)}
	require.Equal(t, SideOne, Decide(stats, 100))
}

func TestDecideNoneWhenBothExceedThreshold(t *testing.T) {
	stats := [2]*shuffleplan.MapOutputStatistics{statsOf(200), statsOf(300)}
	require.Equal(t, SideNone, Decide(stats, 100))
}

func TestDecideTieBreaksToSideZero(t *testing.T) {
	stats := [2]*shuffleplan.MapOutputStatistics{statsOf(10), statsOf(20)}
	require.Equal(t, SideZero, Decide(stats, 100))
}

func TestPlansSideZeroBroadcast(t *testing.T) {
	small, large := Plans(SideZero, 4, [2]uint32{50, 70})
	require.Len(t, small.Partitions, 4)
	require.Len(t, large.Partitions, 4)
	for i, part := range small.Partitions {
		require.False(t, part.IsMapTaskRestricted())
		require.Equal(t, uint32(0), part.PreStart)
		require.Equal(t, uint32(50), part.PreEnd)
		require.Equal(t, uint32(i), part.PostIndex)
	}
	for i, part := range large.Partitions {
		require.True(t, part.IsMapTaskRestricted())
		require.Equal(t, uint32(i), *part.MapTaskRestriction)
		require.Equal(t, uint32(70), part.PreEnd)
	}
	require.Equal(t, small.NumPartitions(), large.NumPartitions())
}
