package shuffleplan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapOutputStatisticsTotalAndNumPartitions(t *testing.T) {
	s := &MapOutputStatistics{StageID: "stage-0", BytesByPartitionID: []int64{10, 0, 5, 20}}
	require.Equal(t, 4, s.NumPartitions())
	require.Equal(t, int64(35), s.Total())
}

func TestMapOutputStatisticsEmpty(t *testing.T) {
	s := &MapOutputStatistics{StageID: "stage-1"}
	require.Equal(t, 0, s.NumPartitions())
	require.Equal(t, int64(0), s.Total())
}
