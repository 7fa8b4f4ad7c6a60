// Package reader adapts a PostShufflePlan into the sequence of
// ShuffleTransport reads one reduce task must perform to consume its
// assigned post-shuffle partition.
package reader

import (
	"fmt"

	"github.com/go-sif/shuffleplan"
)

// PostShuffleReader reads the rows belonging to one post-shuffle partition
// of one exchange's ShuffleDependency, regardless of whether that partition
// was produced by a trivial, coalesced, or broadcast plan.
type PostShuffleReader struct {
	transport shuffleplan.ShuffleTransport
	handle    string
	partition shuffleplan.PostShufflePartition
	current   shuffleplan.PartitionIterator
}

// New returns a PostShuffleReader for partition, reading from handle via
// transport. partition is expected to have come from a PostShufflePlan
// returned by a Coordinator for the ShuffleDependency identified by handle.
func New(transport shuffleplan.ShuffleTransport, handle string, partition shuffleplan.PostShufflePartition) *PostShuffleReader {
	return &PostShuffleReader{transport: transport, handle: handle, partition: partition}
}

// Open requests the underlying iterator for this reader's partition from
// the transport. It must be called before Next.
func (r *PostShuffleReader) Open() error {
	it, err := r.transport.GetReader(r.handle, r.partition.PreStart, r.partition.PreEnd, r.partition.MapTaskRestriction)
	if err != nil {
		return fmt.Errorf("opening post-shuffle partition %d: %w", r.partition.PostIndex, err)
	}
	r.current = it
	return nil
}

// HasNext reports whether another row is available. Open must have
// succeeded first.
func (r *PostShuffleReader) HasNext() bool {
	if r.current == nil {
		return false
	}
	return r.current.HasNext()
}

// Next returns the next row of this post-shuffle partition, discarding the
// pre-shuffle partition id it originated from: a reduce task consuming a
// coalesced or broadcast partition never needs to know which upstream
// pre-shuffle partition a given row came from.
func (r *PostShuffleReader) Next() (shuffleplan.Row, error) {
	return r.current.Next()
}
