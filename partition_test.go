package shuffleplan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostShufflePartitionValidate(t *testing.T) {
	p := PostShufflePartition{PostIndex: 0, PreStart: 0, PreEnd: 4}
	require.NoError(t, p.Validate(4))

	empty := PostShufflePartition{PostIndex: 1, PreStart: 2, PreEnd: 2}
	require.Error(t, empty.Validate(4))

	inverted := PostShufflePartition{PostIndex: 1, PreStart: 3, PreEnd: 1}
	require.Error(t, inverted.Validate(4))

	tooFar := PostShufflePartition{PostIndex: 1, PreStart: 0, PreEnd: 5}
	require.Error(t, tooFar.Validate(4))
}

func TestPostShufflePartitionIsMapTaskRestricted(t *testing.T) {
	p := PostShufflePartition{}
	require.False(t, p.IsMapTaskRestricted())
	restriction := uint32(2)
	p.MapTaskRestriction = &restriction
	require.True(t, p.IsMapTaskRestricted())
}

func TestPostShufflePlanIsBroadcast(t *testing.T) {
	restriction := uint32(0)
	largeSide := PostShufflePlan{Mode: ModeBroadcast, Partitions: []PostShufflePartition{
		{PostIndex: 0, MapTaskRestriction: &restriction},
	}}
	require.True(t, largeSide.IsBroadcast())

	smallSide := PostShufflePlan{Mode: ModeBroadcast, Partitions: []PostShufflePartition{
		{PostIndex: 0},
	}}
	require.True(t, smallSide.IsBroadcast())

	coalescedPlan := PostShufflePlan{Mode: ModeCoalesced, Partitions: []PostShufflePartition{
		{PostIndex: 0},
	}}
	require.False(t, coalescedPlan.IsBroadcast())

	require.False(t, (&PostShufflePlan{}).IsBroadcast())
}

func TestNewCoalescedPlanFillsGapsToP(t *testing.T) {
	plan := NewCoalescedPlan([]uint32{0, 3}, 5)
	require.Len(t, plan.Partitions, 2)
	require.Equal(t, uint32(0), plan.Partitions[0].PreStart)
	require.Equal(t, uint32(3), plan.Partitions[0].PreEnd)
	require.Equal(t, uint32(3), plan.Partitions[1].PreStart)
	require.Equal(t, uint32(5), plan.Partitions[1].PreEnd)
}

func TestNewTrivialPlanIsSinglePartition(t *testing.T) {
	plan := NewTrivialPlan(7)
	require.Len(t, plan.Partitions, 1)
	require.Equal(t, uint32(0), plan.Partitions[0].PreStart)
	require.Equal(t, uint32(7), plan.Partitions[0].PreEnd)
	require.False(t, plan.IsBroadcast())
}

func TestNewBroadcastPlanRestrictedVsUnrestricted(t *testing.T) {
	unrestricted := NewBroadcastPlan(3, 10, false)
	require.Len(t, unrestricted.Partitions, 3)
	require.True(t, unrestricted.IsBroadcast())
	for _, p := range unrestricted.Partitions {
		require.Equal(t, uint32(0), p.PreStart)
		require.Equal(t, uint32(10), p.PreEnd)
	}

	restricted := NewBroadcastPlan(3, 10, true)
	require.True(t, restricted.IsBroadcast())
	for i, p := range restricted.Partitions {
		require.Equal(t, uint32(i), *p.MapTaskRestriction)
	}
}
