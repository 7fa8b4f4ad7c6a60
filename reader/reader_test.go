package reader

import (
	"testing"

	"github.com/go-sif/shuffleplan"
	"github.com/stretchr/testify/require"
)

type fakeIterator struct {
	rows []shuffleplan.Row
	pos  int
}

func (it *fakeIterator) HasNext() bool { return it.pos < len(it.rows) }
func (it *fakeIterator) Next() (shuffleplan.Row, error) {
	row := it.rows[it.pos]
	it.pos++
	return row, nil
}

type fakeTransport struct {
	gotHandle     string
	gotStart      uint32
	gotEnd        uint32
	gotRestrict   *uint32
	iteratorToUse *fakeIterator
}

func (t *fakeTransport) GetReader(handle string, preStart, preEnd uint32, mapTaskRestriction *uint32) (shuffleplan.PartitionIterator, error) {
	t.gotHandle, t.gotStart, t.gotEnd, t.gotRestrict = handle, preStart, preEnd, mapTaskRestriction
	return t.iteratorToUse, nil
}

func TestPostShuffleReaderTranslatesCoalescedPartition(t *testing.T) {
	transport := &fakeTransport{iteratorToUse: &fakeIterator{rows: []shuffleplan.Row{"a", "b"}}}
	partition := shuffleplan.PostShufflePartition{PostIndex: 0, PreStart: 2, PreEnd: 5}
	r := New(transport, "h0", partition)

	require.NoError(t, r.Open())
	require.Equal(t, "h0", transport.gotHandle)
	require.Equal(t, uint32(2), transport.gotStart)
	require.Equal(t, uint32(5), transport.gotEnd)
	require.Nil(t, transport.gotRestrict)

	var rows []shuffleplan.Row
	for r.HasNext() {
		row, err := r.Next()
		require.NoError(t, err)
		rows = append(rows, row)
	}
	require.Equal(t, []shuffleplan.Row{"a", "b"}, rows)
}

func TestPostShuffleReaderPassesMapTaskRestriction(t *testing.T) {
	transport := &fakeTransport{iteratorToUse: &fakeIterator{}}
	restriction := uint32(3)
	partition := shuffleplan.PostShufflePartition{PostIndex: 3, PreStart: 0, PreEnd: 10, MapTaskRestriction: &restriction}
	r := New(transport, "h1", partition)

	require.NoError(t, r.Open())
	require.NotNil(t, transport.gotRestrict)
	require.Equal(t, uint32(3), *transport.gotRestrict)
	require.False(t, r.HasNext())
}
