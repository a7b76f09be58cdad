package app

import (
	"context"
	"testing"
	"time"

	"github.com/akarsten/feedbacklens/internal/domain"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDataset(clock clockwork.Clock, name string) *domain.Dataset {
	return &domain.Dataset{
		ID:     uuid.New(),
		Name:   name,
		Source: domain.SourceUpload,
		Records: []domain.FeedbackRecord{
			{Label: domain.SentimentPositive, Domain: "billing", Comment: "great", CompoundScore: 0.6},
		},
		CreatedAt: clock.Now(),
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(clock, time.Hour)
	ctx := context.Background()

	ds := newTestDataset(clock, "first")
	require.NoError(t, store.Save(ctx, ds))

	got, err := store.Get(ctx, ds.ID)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := NewMemoryStore(clockwork.NewFakeClock(), time.Hour)

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(clock, time.Hour)
	ctx := context.Background()

	ds := newTestDataset(clock, "expiring")
	require.NoError(t, store.Save(ctx, ds))

	clock.Advance(time.Hour + time.Second)

	_, err := store.Get(ctx, ds.ID)
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(clock, time.Hour)
	ctx := context.Background()

	older := newTestDataset(clock, "older")
	require.NoError(t, store.Save(ctx, older))

	clock.Advance(time.Minute)
	newer := newTestDataset(clock, "newer")
	require.NoError(t, store.Save(ctx, newer))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Name)
	assert.Equal(t, "older", list[1].Name)
}

func TestMemoryStoreListSkipsExpired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(clock, time.Hour)
	ctx := context.Background()

	stale := newTestDataset(clock, "stale")
	require.NoError(t, store.Save(ctx, stale))

	clock.Advance(2 * time.Hour)
	fresh := newTestDataset(clock, "fresh")
	require.NoError(t, store.Save(ctx, fresh))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "fresh", list[0].Name)
}

func TestMemoryStoreDelete(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(clock, time.Hour)
	ctx := context.Background()

	ds := newTestDataset(clock, "doomed")
	require.NoError(t, store.Save(ctx, ds))
	require.NoError(t, store.Delete(ctx, ds.ID))

	_, err := store.Get(ctx, ds.ID)
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, ds.ID))
}

func TestMemoryStoreEvictionTimer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(clock, time.Hour)
	ctx := context.Background()

	ds := newTestDataset(clock, "swept")
	require.NoError(t, store.Save(ctx, ds))

	stop := store.StartEvictionTimer(time.Minute)
	defer stop()

	// Wait for the sweep goroutine to arm its ticker before advancing.
	clock.BlockUntil(1)
	clock.Advance(2 * time.Hour)
	// Let the sweep goroutine observe the tick.
	assert.Eventually(t, func() bool {
		store.mu.RLock()
		defer store.mu.RUnlock()
		return len(store.entries) == 0
	}, time.Second, 10*time.Millisecond)
}
