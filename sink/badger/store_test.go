package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/qaforge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(t.TempDir(), false)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutAndRecords(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	pairs := []core.QAPair{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	}
	for _, pair := range pairs {
		require.NoError(t, store.Put(ctx, pair))
	}

	records, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, record := range records {
		assert.Equal(t, pairs[i], record.Pair())
		assert.NotZero(t, record.Id)
		assert.WithinDuration(t, time.Now().UTC(), record.InsertedAt, time.Minute)
	}

	// IDs are strictly increasing in insertion order.
	assert.Less(t, records[0].Id, records[1].Id)
	assert.Less(t, records[1].Id, records[2].Id)
}

func TestPutDoesNotDeduplicate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	pair := core.QAPair{Question: "Q", Answer: "A"}
	require.NoError(t, store.Put(ctx, pair))
	require.NoError(t, store.Put(ctx, pair))

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.NotEqual(t, records[0].Id, records[1].Id)
}

func TestPutRejectsInvalidPair(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	err := store.Put(ctx, core.QAPair{Question: "", Answer: "A"})
	assert.ErrorIs(t, err, core.ErrInvalidQAPair)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := OpenStore(dir, false)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, core.QAPair{Question: "Q1", Answer: "A1"}))
	require.NoError(t, store.Close())

	store, err = OpenStore(dir, false)
	require.NoError(t, err)
	defer store.Close()

	records, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Q1", records[0].Question)
}

func TestMarshalRoundTrip(t *testing.T) {
	record := &core.PairRecord{
		Id:         42,
		Question:   "What is stored?",
		Answer:     "This record.",
		InsertedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	got, err := UnmarshalPairRecord(MarshalPairRecord(record))
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestUnmarshalCorruptData(t *testing.T) {
	_, err := UnmarshalPairRecord([]byte{0xff})
	assert.Error(t, err)
}
