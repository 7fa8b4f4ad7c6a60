package shuffleplan

import "fmt"

// PostShufflePartition describes a single reduce-side partition: the
// contiguous range of pre-shuffle partitions it reads, and an optional
// restriction to a single upstream map task's output within that range.
type PostShufflePartition struct {
	PostIndex          uint32
	PreStart           uint32
	PreEnd             uint32
	MapTaskRestriction *uint32 // nil unless this partition belongs to a broadcast plan
}

// IsMapTaskRestricted returns true iff this partition only reads a single map task's output.
func (p *PostShufflePartition) IsMapTaskRestricted() bool {
	return p.MapTaskRestriction != nil
}

// Validate checks this partition's invariants against P, the total number of
// pre-shuffle partitions it is drawn from.
func (p *PostShufflePartition) Validate(numPreShufflePartitions uint32) error {
	if p.PreStart >= p.PreEnd {
		return fmt.Errorf("post-shuffle partition %d has empty or inverted range [%d, %d)", p.PostIndex, p.PreStart, p.PreEnd)
	}
	if p.PreEnd > numPreShufflePartitions {
		return fmt.Errorf("post-shuffle partition %d range [%d, %d) exceeds P=%d", p.PostIndex, p.PreStart, p.PreEnd, numPreShufflePartitions)
	}
	return nil
}

// PlanMode identifies which decision produced a PostShufflePlan. It is set
// once, by the constructor that built the plan, rather than inferred from
// the partitions' shape: a broadcast plan's small side carries no
// MapTaskRestriction on any partition, so shape alone can't distinguish it
// from a coalesced plan.
type PlanMode int

const (
	// ModeCoalesced marks a plan built by NewCoalescedPlan.
	ModeCoalesced PlanMode = iota
	// ModeTrivial marks the single-partition plan built by NewTrivialPlan.
	ModeTrivial
	// ModeBroadcast marks either side of a plan pair built by NewBroadcastPlan.
	ModeBroadcast
)

// PostShufflePlan is the ordered sequence of PostShufflePartitions handed
// back to a single registered exchange. PostIndex is expected to equal the
// partition's position within Partitions.
type PostShufflePlan struct {
	Partitions []PostShufflePartition
	Mode       PlanMode
}

// NumPartitions returns the number of post-shuffle partitions in this plan.
func (p *PostShufflePlan) NumPartitions() int {
	return len(p.Partitions)
}

// IsBroadcast returns true iff this plan was produced by NewBroadcastPlan,
// covering both the small (unrestricted) and large (map-task-restricted)
// sides of a broadcast decision.
func (p *PostShufflePlan) IsBroadcast() bool {
	return p.Mode == ModeBroadcast
}

// NewCoalescedPlan builds the coalesce-mode PostShufflePlan implied by a
// sorted, zero-based array of start indices over P pre-shuffle partitions.
func NewCoalescedPlan(startIndices []uint32, numPreShufflePartitions uint32) PostShufflePlan {
	partitions := make([]PostShufflePartition, len(startIndices))
	for i, start := range startIndices {
		end := numPreShufflePartitions
		if i+1 < len(startIndices) {
			end = startIndices[i+1]
		}
		partitions[i] = PostShufflePartition{
			PostIndex: uint32(i),
			PreStart:  start,
			PreEnd:    end,
		}
	}
	return PostShufflePlan{Partitions: partitions, Mode: ModeCoalesced}
}

// NewTrivialPlan is the single-partition plan used when there are no
// statistics to coalesce against (every upstream was skipped).
func NewTrivialPlan(numPreShufflePartitions uint32) PostShufflePlan {
	return PostShufflePlan{
		Partitions: []PostShufflePartition{
			{PostIndex: 0, PreStart: 0, PreEnd: numPreShufflePartitions},
		},
		Mode: ModeTrivial,
	}
}

// NewBroadcastPlan builds a full-fanout plan of length numMapTasks, either
// unrestricted (the small, fully-replicated side) or restricted to one map
// task per post-partition (the large, partition-preserving side). Both
// sides are tagged ModeBroadcast regardless of restriction, since shape
// alone doesn't distinguish the small side from a coalesced plan.
func NewBroadcastPlan(numMapTasks uint32, numPreShufflePartitions uint32, restricted bool) PostShufflePlan {
	partitions := make([]PostShufflePartition, numMapTasks)
	for i := uint32(0); i < numMapTasks; i++ {
		part := PostShufflePartition{
			PostIndex: i,
			PreStart:  0,
			PreEnd:    numPreShufflePartitions,
		}
		if restricted {
			mapTask := i
			part.MapTaskRestriction = &mapTask
		}
		partitions[i] = part
	}
	return PostShufflePlan{Partitions: partitions, Mode: ModeBroadcast}
}
