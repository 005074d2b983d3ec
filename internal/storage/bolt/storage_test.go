package bolt

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/goserg/scoreboard/internal/storage"
	"github.com/goserg/scoreboard/internal/storage/storagetest"
)

func TestStorage(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.PlayerStorage {
		s, err := New(logrus.New(), filepath.Join(t.TempDir(), "scoreboard.db"))
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = s.Close()
		})
		return s
	})
}
