package domain

import (
	"strconv"

	"github.com/google/uuid"
)

type Player struct {
	ID       uuid.UUID
	Username string
	Points   int
	Avatar   string
}

// RankedPlayer is a Player with its 1-based position in the points order.
// It is computed on every request and never stored.
type RankedPlayer struct {
	Player
	Rank int
}

type NewPlayer struct {
	Username string
	Points   int
	Avatar   string
}

type MatchResult struct {
	Winner  uuid.UUID
	Applied bool
	Ranking []RankedPlayer
}

// Medal renders a rank, with medals for the podium.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return strconv.Itoa(rank)
}
