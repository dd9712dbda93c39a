package session

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	"recruitment-dashboard/internal/model"
)

func newTestStore(ttl time.Duration, clock *time.Time) *Store {
	s := NewStore(ttl, nil)
	s.now = func() time.Time { return *clock }
	return s
}

func TestStoreLifecycle(t *testing.T) {
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := newTestStore(time.Minute, &clock)

	created := s.Create()
	require.NotEmpty(t, created.ID)
	require.Equal(t, model.All, created.Selection[model.ColumnAgency])
	require.Equal(t, 1, s.Len())

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	clock = clock.Add(30 * time.Second)
	updated, err := s.UpdateSelection(created.ID, model.Selection{model.ColumnAgency: "AMK"})
	require.NoError(t, err)
	require.Equal(t, "AMK", updated.Selection[model.ColumnAgency])
	require.Equal(t, model.All, updated.Selection[model.ColumnRegional])
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	require.NoError(t, s.Delete(created.ID))
	_, err = s.Get(created.ID)
	require.True(t, errors.Is(err, ErrNotFound))
	require.True(t, errors.Is(s.Delete(created.ID), ErrNotFound))
}

func TestStoreSnapshotsAreIndependent(t *testing.T) {
	clock := time.Now()
	s := newTestStore(time.Hour, &clock)
	created := s.Create()

	created.Selection[model.ColumnAgency] = "AKP"

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, model.All, got.Selection[model.ColumnAgency])
}

func TestStoreSweepExpiresIdleSessions(t *testing.T) {
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := newTestStore(time.Minute, &clock)

	stale := s.Create()
	clock = clock.Add(45 * time.Second)
	fresh := s.Create()

	clock = clock.Add(30 * time.Second)
	_, err := s.Get(stale.ID)
	require.True(t, errors.Is(err, ErrNotFound), "expired session must not be served")

	require.Equal(t, 1, s.Sweep(clock))
	require.Equal(t, 1, s.Len())

	_, err = s.Get(fresh.ID)
	require.NoError(t, err)
}

func TestStoreRunStopsOnCancel(t *testing.T) {
	s := NewStore(time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
