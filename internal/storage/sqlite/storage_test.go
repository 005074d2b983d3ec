package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/storage"
	"github.com/goserg/scoreboard/internal/storage/storagetest"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(logrus.New(), filepath.Join(t.TempDir(), "scoreboard.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestStorage(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.PlayerStorage {
		return newTestStorage(t)
	})
}

func TestStorage_ReopenKeepsPlayers(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scoreboard.sqlite")
	s, err := New(logrus.New(), file)
	require.NoError(t, err)
	id, err := s.Add(context.Background(), domain.Player{Username: "alice", Points: 3})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = New(logrus.New(), file)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Points)
}

func TestStorage_ClosedDBIsUnavailable(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Close())

	_, err := s.ListPlayers(context.Background())
	assert.ErrorIs(t, err, storage.ErrUnavailable)
}

func Test_convertPlayerFromDomain(t *testing.T) {
	withoutAvatar := convertPlayerFromDomain(domain.Player{Username: "a"})
	assert.Nil(t, withoutAvatar.Avatar)

	withAvatar := convertPlayerFromDomain(domain.Player{Username: "a", Avatar: "x.png"})
	require.NotNil(t, withAvatar.Avatar)
	assert.Equal(t, "x.png", *withAvatar.Avatar)
}
