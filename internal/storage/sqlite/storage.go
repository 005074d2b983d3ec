package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/goserg/scoreboard/gen/model"
	"github.com/goserg/scoreboard/gen/table"
	"github.com/goserg/scoreboard/internal/domain"
	sqlite3 "github.com/goserg/scoreboard/internal/migrate"
	"github.com/goserg/scoreboard/internal/storage"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithField("from", "sqlite-storage")
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return nil, err
	}

	err = sqlite3.UpPlayersDB(db)
	if err != nil {
		return nil, fmt.Errorf("migrate players db: %w", err)
	}
	log.WithField("file", fileName).Info("player storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Get(ctx context.Context, id uuid.UUID) (domain.Player, error) {
	var dest model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, unavailable(err)
	}
	return convertPlayerToDomain(dest)
}

func (s *Storage) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.Points.DESC()).
		QueryContext(ctx, s.db, &players)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, unavailable(err)
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) AddPoints(ctx context.Context, id uuid.UUID, delta int) (int64, error) {
	res, err := table.Players.
		UPDATE(table.Players.Points).
		SET(table.Players.Points.ADD(sqlite.Int(int64(delta)))).
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return 0, unavailable(err)
	}
	return rowsAffected(res)
}

func (s *Storage) Add(ctx context.Context, player domain.Player) (uuid.UUID, error) {
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(convertPlayerFromDomain(player)).
		ExecContext(ctx, s.db)
	if err != nil {
		return uuid.Nil, unavailable(err)
	}
	return player.ID, nil
}

func (s *Storage) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := table.Players.
		DELETE().
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return 0, unavailable(err)
	}
	return rowsAffected(res)
}

func (s *Storage) DeleteAll(ctx context.Context) (int64, error) {
	res, err := table.Players.
		DELETE().
		WHERE(sqlite.Bool(true)).
		ExecContext(ctx, s.db)
	if err != nil {
		return 0, unavailable(err)
	}
	return rowsAffected(res)
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, unavailable(err)
	}
	return n, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
}
