// Package estimation tracks the runtime statistics of a single coordinator's
// estimation pass: when it ran, how long it took, how much data it saw, and
// which decision it reached. It exists for introspection and testing, distinct
// from the cross-query Prometheus counters in the metrics package.
package estimation

import "time"

// Decision identifies which planning strategy an estimation pass took.
type Decision int

// DecisionNone means estimation has not run yet.
const (
	DecisionNone Decision = iota
	DecisionTrivial
	DecisionCoalesce
	DecisionBroadcast
)

// String returns a textual representation of this Decision
func (d Decision) String() string {
	switch d {
	case DecisionTrivial:
		return "trivial"
	case DecisionCoalesce:
		return "coalesce"
	case DecisionBroadcast:
		return "broadcast"
	default:
		return "none"
	}
}

// Stats records a single coordinator's estimation pass.
type Stats struct {
	startTime     time.Time
	runtime       time.Duration
	bytesObserved int64
	decision      Decision
	numPostSplits int
}

// Start marks the beginning of an estimation pass.
func (s *Stats) Start() {
	s.startTime = time.Now()
}

// Finish records the outcome of an estimation pass: the decision reached,
// the total bytes observed across all statistics, and the number of
// post-shuffle partitions in each plan produced.
func (s *Stats) Finish(decision Decision, bytesObserved int64, numPostSplits int) {
	s.runtime = time.Since(s.startTime)
	s.decision = decision
	s.bytesObserved = bytesObserved
	s.numPostSplits = numPostSplits
}

// Runtime returns how long the estimation pass took.
func (s *Stats) Runtime() time.Duration { return s.runtime }

// BytesObserved returns the total bytes across all statistics gathered during estimation.
func (s *Stats) BytesObserved() int64 { return s.bytesObserved }

// Decision returns the decision the estimation pass reached.
func (s *Stats) Decision() Decision { return s.decision }

// NumPostShufflePartitions returns the number of post-shuffle partitions
// in each plan produced, for any decision; zero until estimation has run.
func (s *Stats) NumPostShufflePartitions() int { return s.numPostSplits }
