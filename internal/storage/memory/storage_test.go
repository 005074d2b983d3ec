package memory

import (
	"testing"

	"github.com/goserg/scoreboard/internal/storage"
	"github.com/goserg/scoreboard/internal/storage/storagetest"
)

func TestStorage(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.PlayerStorage {
		return New()
	})
}
