package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/storage"
)

// Storage keeps players in memory in insertion order.
type Storage struct {
	mu      sync.RWMutex
	order   []uuid.UUID
	players map[uuid.UUID]domain.Player
}

var _ storage.PlayerStorage = (*Storage)(nil)

func New(players ...domain.Player) *Storage {
	s := &Storage{
		players: make(map[uuid.UUID]domain.Player),
	}
	for _, p := range players {
		_, _ = s.Add(context.Background(), p)
	}
	return s
}

func (s *Storage) Get(_ context.Context, id uuid.UUID) (domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return domain.Player{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *Storage) ListPlayers(_ context.Context) ([]domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]domain.Player, 0, len(s.order))
	for _, id := range s.order {
		players = append(players, s.players[id])
	}
	return players, nil
}

func (s *Storage) AddPoints(_ context.Context, id uuid.UUID, delta int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return 0, nil
	}
	p.Points += delta
	s.players[id] = p
	return 1, nil
}

func (s *Storage) Add(_ context.Context, player domain.Player) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	if _, ok := s.players[player.ID]; !ok {
		s.order = append(s.order, player.ID)
	}
	s.players[player.ID] = player
	return player.ID, nil
}

func (s *Storage) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return 0, nil
	}
	delete(s.players, id)
	for i := range s.order {
		if s.order[i] == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (s *Storage) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.players))
	s.players = make(map[uuid.UUID]domain.Player)
	s.order = nil
	return n, nil
}
