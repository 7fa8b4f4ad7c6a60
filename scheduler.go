package shuffleplan

import "context"

// Scheduler submits a map stage for a ShuffleDependency and hands back a
// future for its resulting MapOutputStatistics. The actual task submission
// and execution machinery lives entirely outside this module.
type Scheduler interface {
	SubmitMapStage(ctx context.Context, dep ShuffleDependency) (MapStageFuture, error)
}

// MapStageFuture is resolved once a submitted map stage finishes. Wait
// blocks until the stage completes, the context is cancelled, or the stage
// fails; cancelling ctx must cause Wait to return promptly.
type MapStageFuture interface {
	Wait(ctx context.Context) (*MapOutputStatistics, error)
}
