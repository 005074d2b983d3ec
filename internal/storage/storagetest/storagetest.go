// Package storagetest checks a storage.PlayerStorage implementation against
// the behaviour the service relies on.
package storagetest

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/storage"
)

// Run executes the storage contract against fresh stores built by newStorage.
func Run(t *testing.T, newStorage func(t *testing.T) storage.PlayerStorage) {
	t.Helper()

	t.Run("empty store", func(t *testing.T) {
		s := newStorage(t)
		players, err := s.ListPlayers(context.Background())
		require.NoError(t, err)
		assert.Empty(t, players)
	})

	t.Run("add and get", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()
		id, err := s.Add(ctx, domain.Player{Username: "alice", Points: 10, Avatar: "https://example.com/a.png"})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.Player{
			ID:       id,
			Username: "alice",
			Points:   10,
			Avatar:   "https://example.com/a.png",
		}, got)
	})

	t.Run("add keeps given id", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()
		want := uuid.New()
		id, err := s.Add(ctx, domain.Player{ID: want, Username: "bob"})
		require.NoError(t, err)
		assert.Equal(t, want, id)
	})

	t.Run("get missing", func(t *testing.T) {
		s := newStorage(t)
		_, err := s.Get(context.Background(), uuid.New())
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("list returns every player", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()
		want := make(map[uuid.UUID]string)
		for _, name := range []string{"a", "b", "c"} {
			id, err := s.Add(ctx, domain.Player{Username: name})
			require.NoError(t, err)
			want[id] = name
		}
		players, err := s.ListPlayers(ctx)
		require.NoError(t, err)
		require.Len(t, players, 3)
		for _, p := range players {
			assert.Equal(t, want[p.ID], p.Username)
		}
	})

	t.Run("add points", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()
		id, err := s.Add(ctx, domain.Player{Username: "carol", Points: 5})
		require.NoError(t, err)

		n, err := s.AddPoints(ctx, id, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = s.AddPoints(ctx, id, -10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, -2, got.Points)
	})

	t.Run("points beyond 32 bits", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()
		big, err := s.Add(ctx, domain.Player{Username: "big", Points: 3_000_000_000})
		require.NoError(t, err)
		edge, err := s.Add(ctx, domain.Player{Username: "edge", Points: math.MaxInt32})
		require.NoError(t, err)

		got, err := s.Get(ctx, big)
		require.NoError(t, err)
		assert.Equal(t, 3_000_000_000, got.Points)

		n, err := s.AddPoints(ctx, edge, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		got, err = s.Get(ctx, edge)
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt32+1, got.Points)

		players, err := s.ListPlayers(ctx)
		require.NoError(t, err)
		points := make(map[uuid.UUID]int)
		for _, p := range players {
			points[p.ID] = p.Points
		}
		assert.Equal(t, map[uuid.UUID]int{big: 3_000_000_000, edge: math.MaxInt32 + 1}, points)
	})

	t.Run("add points to missing player", func(t *testing.T) {
		s := newStorage(t)
		n, err := s.AddPoints(context.Background(), uuid.New(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()
		id, err := s.Add(ctx, domain.Player{Username: "dave"})
		require.NoError(t, err)

		const workers = 20
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				_, err := s.AddPoints(ctx, id, 1)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, workers, got.Points)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()
		id, err := s.Add(ctx, domain.Player{Username: "erin"})
		require.NoError(t, err)

		n, err := s.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = s.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		_, err = s.Get(ctx, id)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete all", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()
		for _, name := range []string{"a", "b"} {
			_, err := s.Add(ctx, domain.Player{Username: name})
			require.NoError(t, err)
		}
		n, err := s.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		players, err := s.ListPlayers(ctx)
		require.NoError(t, err)
		assert.Empty(t, players)

		n, err = s.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}
