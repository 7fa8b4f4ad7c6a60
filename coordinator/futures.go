package coordinator

import (
	"context"

	"github.com/go-sif/shuffleplan"
	"github.com/go-sif/shuffleplan/errors"
	"golang.org/x/sync/errgroup"
)

// submitAndAwait submits one map stage per dependency that actually has
// upstream partitions, waits for all of them concurrently, and returns
// their MapOutputStatistics in the same order as deps (dependencies with
// zero upstream partitions are skipped rather than submitted at all). The
// first stage failure cancels ctx for the rest of the group and is
// returned to the caller.
func (c *Coordinator) submitAndAwait(ctx context.Context, deps []shuffleplan.ShuffleDependency) ([]*shuffleplan.MapOutputStatistics, error) {
	slots := make([]*shuffleplan.MapOutputStatistics, len(deps))
	g, ctx := errgroup.WithContext(ctx)
	for i, dep := range deps {
		if dep.UpstreamPartitionCount() == 0 {
			continue
		}
		i, dep := i, dep
		g.Go(func() error {
			future, err := c.scheduler.SubmitMapStage(ctx, dep)
			if err != nil {
				return err
			}
			stats, err := future.Wait(ctx)
			if err != nil {
				return err
			}
			slots[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.UpstreamStageFailedError{Cause: err}
	}

	collected := make([]*shuffleplan.MapOutputStatistics, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			collected = append(collected, s)
		}
	}
	return collected, nil
}
