package sqlite

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goserg/scoreboard/gen/model"
	"github.com/goserg/scoreboard/internal/domain"
)

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", player.ID, err)
	}
	var avatar string
	if player.Avatar != nil {
		avatar = *player.Avatar
	}
	return domain.Player{
		ID:       id,
		Username: player.Username,
		Points:   int(player.Points),
		Avatar:   avatar,
	}, nil
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	var avatar *string
	if player.Avatar != "" {
		avatar = &player.Avatar
	}
	return model.Players{
		ID:       player.ID.String(),
		Username: player.Username,
		Points:   int64(player.Points),
		Avatar:   avatar,
	}
}
