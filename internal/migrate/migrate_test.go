package sqlite3

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpPlayersDB(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "players.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	require.NoError(t, UpPlayersDB(db))
	require.NoError(t, UpPlayersDB(db), "second run is a no-op")

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'players'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "players", name)

	_, err = db.Exec(`INSERT INTO players (id, username) VALUES ('a', 'alice')`)
	require.NoError(t, err)
	var points int
	require.NoError(t, db.QueryRow(`SELECT points FROM players WHERE id = 'a'`).Scan(&points))
	assert.Equal(t, 0, points)
}
