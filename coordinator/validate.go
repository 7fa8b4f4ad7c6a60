package coordinator

import (
	"fmt"

	"github.com/go-sif/shuffleplan"
	"github.com/go-sif/shuffleplan/errors"
	"github.com/hashicorp/go-multierror"
)

// validateConsistentPartitionCounts asserts that every MapOutputStatistics
// collected during one estimation pass reports the same number of
// pre-shuffle partitions, since they are all meant to come from shuffles
// sharing one partitioner. Every mismatch found is collected rather than
// returning on the first one, so the caller sees the full picture.
func validateConsistentPartitionCounts(stats []*shuffleplan.MapOutputStatistics) error {
	if len(stats) == 0 {
		return nil
	}
	want := stats[0].NumPartitions()
	var violations *multierror.Error
	for i, s := range stats[1:] {
		if s.NumPartitions() != want {
			violations = multierror.Append(violations, fmt.Errorf(
				"statistics %d reports %d pre-shuffle partitions, expected %d",
				i+1, s.NumPartitions(), want,
			))
		}
	}
	return errors.NewInvariantViolation(violations)
}
