package coalesce

// Mapping is a derived, read-mostly index answering "which post-shuffle
// partition owns pre-partition p?" in O(1). It is built once from
// (numPreShufflePartitions, startIndices) and is safe to share after
// construction under single-assignment semantics: nothing about it ever
// changes again.
type Mapping struct {
	numPreShufflePartitions uint32
	startIndices            []uint32
	owner                   []uint32
}

// NewMapping builds a Mapping from P and a sorted, strictly-increasing array
// of start indices beginning at zero. Each entry must be less than P.
func NewMapping(numPreShufflePartitions uint32, startIndices []uint32) *Mapping {
	owner := make([]uint32, numPreShufflePartitions)
	for i, start := range startIndices {
		end := numPreShufflePartitions
		if i+1 < len(startIndices) {
			end = startIndices[i+1]
		}
		for p := start; p < end; p++ {
			owner[p] = uint32(i)
		}
	}
	return &Mapping{
		numPreShufflePartitions: numPreShufflePartitions,
		startIndices:            startIndices,
		owner:                   owner,
	}
}

// OwnerOf returns the post-shuffle partition that owns pre-shuffle
// partition pre.
func (m *Mapping) OwnerOf(pre uint32) uint32 {
	return m.owner[pre]
}

// NumPostShufflePartitions returns the number of post-shuffle partitions
// this mapping divides P into.
func (m *Mapping) NumPostShufflePartitions() int {
	return len(m.startIndices)
}

// Equal compares two Mappings structurally, over (P, startIndices), as
// required by the data model: two mappings built from the same inputs are
// interchangeable regardless of identity.
func (m *Mapping) Equal(o *Mapping) bool {
	if o == nil || m.numPreShufflePartitions != o.numPreShufflePartitions {
		return false
	}
	if len(m.startIndices) != len(o.startIndices) {
		return false
	}
	for i := range m.startIndices {
		if m.startIndices[i] != o.startIndices[i] {
			return false
		}
	}
	return true
}
