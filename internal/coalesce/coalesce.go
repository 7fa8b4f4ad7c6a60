// Package coalesce implements the pure, total decision logic that turns a
// set of per-partition byte statistics into a coalesced start-index array: a
// single-pass, greedy, left-to-right walk that never backtracks and always
// preserves the original partition ordering.
package coalesce

import "github.com/go-sif/shuffleplan"

// minCapFloor prevents minPartitions from degenerating the effective target
// to zero when every byte count is zero, which would otherwise force every
// pre-partition into its own post-partition.
const minCapFloor = 16

// StartIndices computes the coalesced start-index array for stats, a set of
// MapOutputStatistics that all share the same P (pre-shuffle partition
// count). targetBytes is the advisory per-post-partition byte budget;
// minPartitions, if non-nil, puts upward pressure on the resulting count by
// shrinking the effective target, but never grows it past targetBytes.
//
// stats must be non-empty and every element must report the same P; callers
// are responsible for that precondition (the coordinator enforces it before
// calling in).
func StartIndices(stats []*shuffleplan.MapOutputStatistics, targetBytes uint64, minPartitions *uint32) []uint32 {
	numPartitions := stats[0].NumPartitions()
	effectiveTarget := effectiveTarget(stats, targetBytes, minPartitions)

	startIndices := []uint32{0}
	var acc uint64
	for p := 0; p < numPartitions; p++ {
		acc += partitionBytes(stats, p)
		if acc >= effectiveTarget && p < numPartitions-1 {
			startIndices = append(startIndices, uint32(p+1))
			acc = 0
		}
	}
	return startIndices
}

// partitionBytes sums the byte count at pre-partition p across all upstream
// statistics being coalesced together.
func partitionBytes(stats []*shuffleplan.MapOutputStatistics, p int) uint64 {
	var sum uint64
	for _, s := range stats {
		sum += uint64(s.BytesByPartitionID[p])
	}
	return sum
}

// effectiveTarget applies the minPartitions upward-pressure rule described
// in the Coalescer contract: it never raises the target past targetBytes,
// only ever lowers it, and the lowering is capped at minCapFloor so an
// all-zero input doesn't force one post-partition per pre-partition.
func effectiveTarget(stats []*shuffleplan.MapOutputStatistics, targetBytes uint64, minPartitions *uint32) uint64 {
	if minPartitions == nil {
		return targetBytes
	}
	var total uint64
	for _, s := range stats {
		total += uint64(s.Total())
	}
	capByMin := total / uint64(*minPartitions)
	if total%uint64(*minPartitions) != 0 {
		capByMin++ // ceiling division
	}
	if capByMin < minCapFloor {
		capByMin = minCapFloor
	}
	if capByMin < targetBytes {
		return capByMin
	}
	return targetBytes
}
