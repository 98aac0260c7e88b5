package infrastructure

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daylight-monitor/internal/application"
)

func TestObservationStoreAbsentOnFreshDatabase(t *testing.T) {
	store, err := NewObservationStore(filepath.Join(t.TempDir(), "daylight.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, found, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, found)
}

func TestObservationStoreLastWriteWins(t *testing.T) {
	store, err := NewObservationStore(filepath.Join(t.TempDir(), "daylight.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()

	require.NoError(t, store.Save(ctx, application.Observation{DayLength: 43140}))
	obs, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(43140), obs.DayLength)

	require.NoError(t, store.Save(ctx, application.Observation{DayLength: 43200}))
	obs, found, err = store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(43200), obs.DayLength)
}

func TestObservationStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daylight.db")
	ctx := context.Background()

	store, err := NewObservationStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, application.Observation{DayLength: 43200}))
	require.NoError(t, store.Close())

	reopened, err := NewObservationStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	obs, found, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(43200), obs.DayLength)
}
