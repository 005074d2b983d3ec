package bolt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/storage"
)

var playersBucket = []byte("players")

// document is the JSON value stored under the player id.
type document struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
	Avatar   string `json:"avatar,omitempty"`
}

type Storage struct {
	db  *bolt.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithField("from", "bolt-storage")
	db, err := bolt.Open(fileName, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", fileName, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(playersBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	log.WithField("file", fileName).Info("player storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Get(_ context.Context, id uuid.UUID) (domain.Player, error) {
	var player domain.Player
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(playersBucket).Get(id[:])
		if raw == nil {
			return storage.ErrNotFound
		}
		p, err := decode(id[:], raw)
		if err != nil {
			return err
		}
		player = p
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Player{}, err
		}
		return domain.Player{}, unavailable(err)
	}
	return player, nil
}

func (s *Storage) ListPlayers(_ context.Context) ([]domain.Player, error) {
	players := make([]domain.Player, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(playersBucket).ForEach(func(k, v []byte) error {
			p, err := decode(k, v)
			if err != nil {
				return err
			}
			players = append(players, p)
			return nil
		})
	})
	if err != nil {
		return nil, unavailable(err)
	}
	return players, nil
}

// AddPoints reads and rewrites the document inside one write transaction,
// so concurrent deltas are serialized by bolt.
func (s *Storage) AddPoints(_ context.Context, id uuid.UUID, delta int) (int64, error) {
	var affected int64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(playersBucket)
		raw := b.Get(id[:])
		if raw == nil {
			return nil
		}
		var doc document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		doc.Points += delta
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		affected = 1
		return b.Put(id[:], data)
	})
	if err != nil {
		return 0, unavailable(err)
	}
	return affected, nil
}

func (s *Storage) Add(_ context.Context, player domain.Player) (uuid.UUID, error) {
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	data, err := json.Marshal(document{
		Username: player.Username,
		Points:   player.Points,
		Avatar:   player.Avatar,
	})
	if err != nil {
		return uuid.Nil, err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(playersBucket).Put(player.ID[:], data)
	})
	if err != nil {
		return uuid.Nil, unavailable(err)
	}
	return player.ID, nil
}

func (s *Storage) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(playersBucket)
		if b.Get(id[:]) == nil {
			return nil
		}
		affected = 1
		return b.Delete(id[:])
	})
	if err != nil {
		return 0, unavailable(err)
	}
	return affected, nil
}

func (s *Storage) DeleteAll(_ context.Context) (int64, error) {
	var affected int64
	err := s.db.Update(func(tx *bolt.Tx) error {
		affected = int64(tx.Bucket(playersBucket).Stats().KeyN)
		if err := tx.DeleteBucket(playersBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(playersBucket)
		return err
	})
	if err != nil {
		return 0, unavailable(err)
	}
	return affected, nil
}

func decode(key, value []byte) (domain.Player, error) {
	id, err := uuid.FromBytes(key)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player key %x: %w", key, err)
	}
	var doc document
	if err := json.Unmarshal(value, &doc); err != nil {
		return domain.Player{}, fmt.Errorf("player %s: %w", id, err)
	}
	return domain.Player{
		ID:       id,
		Username: doc.Username,
		Points:   doc.Points,
		Avatar:   doc.Avatar,
	}, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
}
