package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/goserg/scoreboard/internal/domain"
)

var (
	ErrNotFound    = errors.New("player not found")
	ErrUnavailable = errors.New("player storage unavailable")
)

// PlayerStorage keeps player records. ListPlayers gives no ordering
// guarantee. AddPoints must apply the delta in one atomic step and report how
// many records it touched (0 or 1).
type PlayerStorage interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Player, error)
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	AddPoints(ctx context.Context, id uuid.UUID, delta int) (int64, error)
	Add(ctx context.Context, player domain.Player) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
