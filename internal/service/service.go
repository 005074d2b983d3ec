package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/metrics"
	"github.com/goserg/scoreboard/internal/normalize"
	"github.com/goserg/scoreboard/internal/ranking"
	"github.com/goserg/scoreboard/internal/storage"
)

var ErrEmptyUsername = errors.New("username must not be empty")

type PlayerService struct {
	playerStorage storage.PlayerStorage
	metrics       metrics.Metrics
	log           *logrus.Entry

	// coin reports whether the first player wins a simulated match.
	coin func() bool
}

type Option func(*PlayerService)

// WithCoin replaces the uniform random draw used to pick match winners.
func WithCoin(coin func() bool) Option {
	return func(s *PlayerService) {
		s.coin = coin
	}
}

func New(playerStorage storage.PlayerStorage, m metrics.Metrics, l *logrus.Logger, opts ...Option) *PlayerService {
	s := &PlayerService{
		playerStorage: playerStorage,
		metrics:       m,
		log:           l.WithField("from", "player-service"),
		coin: func() bool {
			return rand.Intn(2) == 0
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PlayerService) CreatePlayer(ctx context.Context, p domain.NewPlayer) (uuid.UUID, error) {
	username := normalize.Name(p.Username)
	if username == "" {
		return uuid.Nil, ErrEmptyUsername
	}
	id, err := s.playerStorage.Add(ctx, domain.Player{
		Username: username,
		Points:   p.Points,
		Avatar:   p.Avatar,
	})
	if err != nil {
		s.storeFailed(err, "unable to insert player")
		return uuid.Nil, err
	}
	s.metrics.IncPlayersCreated()
	s.log.WithFields(logrus.Fields{
		"id":       id,
		"username": username,
	}).Info("player created")
	return id, nil
}

// GetPlayer returns the player with its current rank. Two separate reads are
// made, so a player deleted in between is reported as not found.
func (s *PlayerService) GetPlayer(ctx context.Context, id uuid.UUID) (domain.RankedPlayer, error) {
	player, err := s.playerStorage.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.storeFailed(err, "unable to fetch player")
		}
		return domain.RankedPlayer{}, err
	}
	players, err := s.playerStorage.ListPlayers(ctx)
	if err != nil {
		s.storeFailed(err, "unable to fetch players")
		return domain.RankedPlayer{}, err
	}
	ranked, ok := ranking.RankOne(player, players)
	if !ok {
		return domain.RankedPlayer{}, storage.ErrNotFound
	}
	return ranked, nil
}

// ListPlayers returns every player ranked by points. On a storage failure the
// list is empty and the error is returned next to it.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]domain.RankedPlayer, error) {
	players, err := s.playerStorage.ListPlayers(ctx)
	if err != nil {
		s.storeFailed(err, "unable to fetch players")
		return []domain.RankedPlayer{}, err
	}
	return ranking.RankAll(players), nil
}

// AddPoints applies delta atomically and reports how many players changed. A
// zero delta changes nothing and reports 0 without touching the store.
func (s *PlayerService) AddPoints(ctx context.Context, id uuid.UUID, delta int) (int64, error) {
	if delta == 0 {
		return 0, nil
	}
	n, err := s.playerStorage.AddPoints(ctx, id, delta)
	if err != nil {
		s.storeFailed(err, "unable to update points")
		return 0, err
	}
	if n > 0 {
		s.metrics.IncPointsUpdates()
	}
	return n, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := s.playerStorage.Delete(ctx, id)
	if err != nil {
		s.storeFailed(err, "unable to delete player")
		return 0, err
	}
	s.metrics.IncPlayersDeleted(n)
	return n, nil
}

func (s *PlayerService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.playerStorage.DeleteAll(ctx)
	if err != nil {
		s.storeFailed(err, "unable to delete players")
		return 0, err
	}
	s.metrics.IncPlayersDeleted(n)
	s.log.WithField("count", n).Info("all players deleted")
	return n, nil
}

// SimulateMatch gives one point to a randomly chosen winner and returns the
// new ranking. Neither id is checked: when the winner matches no player the
// ranking comes back unchanged and Applied is false.
func (s *PlayerService) SimulateMatch(ctx context.Context, player1, player2 uuid.UUID) (domain.MatchResult, error) {
	winner := player2
	if s.coin() {
		winner = player1
	}
	log := s.log.WithFields(logrus.Fields{
		"player1": player1,
		"player2": player2,
		"winner":  winner,
	})
	result := domain.MatchResult{Winner: winner}

	n, err := s.playerStorage.AddPoints(ctx, winner, 1)
	if err != nil {
		s.storeFailed(err, "unable to award match point")
	} else {
		s.metrics.IncMatchesSimulated()
		result.Applied = n > 0
		if !result.Applied {
			s.metrics.IncMatchesNoop()
			log.Warn("match winner not found, ranking unchanged")
		} else {
			log.Info("match simulated")
		}
	}

	ranked, listErr := s.ListPlayers(ctx)
	result.Ranking = ranked
	return result, errors.Join(err, listErr)
}

func (s *PlayerService) storeFailed(err error, msg string) {
	s.metrics.IncStoreErrors()
	s.log.WithError(err).Error(msg)
}
