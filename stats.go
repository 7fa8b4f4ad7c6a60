package shuffleplan

// MapOutputStatistics describes the per-partition byte sizes reported by one
// completed map stage. It is produced once, when the map stage finishes, and
// is immutable thereafter.
type MapOutputStatistics struct {
	// StageID identifies the map stage that produced these statistics.
	StageID string
	// BytesByPartitionID is a dense sequence of non-negative byte counts,
	// indexed by pre-shuffle partition id in [0, P).
	BytesByPartitionID []int64
}

// NumPartitions returns P, the number of pre-shuffle partitions these
// statistics cover.
func (s *MapOutputStatistics) NumPartitions() int {
	return len(s.BytesByPartitionID)
}

// Total sums the byte counts across all partitions.
func (s *MapOutputStatistics) Total() int64 {
	var total int64
	for _, b := range s.BytesByPartitionID {
		total += b
	}
	return total
}
