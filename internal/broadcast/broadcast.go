// Package broadcast implements the two-input join broadcast-side decision:
// given byte totals for exactly two upstream sides, decide whether one side
// is small enough to broadcast, and if so which one.
package broadcast

import "github.com/go-sif/shuffleplan"

// Side identifies which of the two registered exchanges was chosen.
type Side int

// SideNone indicates neither side qualified and the caller should fall back
// to the Coalescer. SideZero and SideOne identify the broadcast side by
// registration order.
const (
	SideNone Side = iota
	SideZero
	SideOne
)

// Decide applies the BroadcastDecider policy to exactly two MapOutputStatistics,
// in registration order, against threshold. Side zero wins ties (both sides
// under threshold), matching scan order.
func Decide(stats [2]*shuffleplan.MapOutputStatistics, threshold uint64) Side {
	s0 := uint64(stats[0].Total())
	s1 := uint64(stats[1].Total())
	switch {
	case s0 < threshold:
		return SideZero
	case s1 < threshold:
		return SideOne
	default:
		return SideNone
	}
}

// LargeSide returns the index of the side that was not chosen to broadcast.
func (s Side) LargeSide() int {
	if s == SideZero {
		return 1
	}
	return 0
}

// SmallSide returns the index of the side chosen to broadcast.
func (s Side) SmallSide() int {
	if s == SideZero {
		return 0
	}
	return 1
}

// Plans builds the pair of PostShufflePlans for a broadcast decision: the
// small side reads every pre-shuffle partition from every reducer, and the
// large side preserves its own physical partitioning by restricting each
// reducer to one map task. numMapTasks is the large side's upstream map
// task count, used as the fan-out (M) for both plans; numPreShuffle holds
// each side's own P, indexed by registration order (0, 1).
func Plans(s Side, numMapTasks uint32, numPreShuffle [2]uint32) (small, large shuffleplan.PostShufflePlan) {
	smallIdx, largeIdx := s.SmallSide(), s.LargeSide()
	small = shuffleplan.NewBroadcastPlan(numMapTasks, numPreShuffle[smallIdx], false)
	large = shuffleplan.NewBroadcastPlan(numMapTasks, numPreShuffle[largeIdx], true)
	return small, large
}
