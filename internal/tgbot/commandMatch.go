package tgbot

import (
	"context"
	"errors"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/goserg/scoreboard/internal/service"
)

var (
	ErrMatchUsage  = errors.New(`two player ids are required, for example "/match <id1> <id2>"`)
	ErrSamePlayers = errors.New("a player can't play against themselves")
)

type MatchCommand struct {
	playerService *service.PlayerService
}

func (c *MatchCommand) Run(ctx context.Context, args string, resp *tgbotapi.MessageConfig) error {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return ErrMatchUsage
	}
	ids := make([]uuid.UUID, 0, len(fields))
	for _, f := range fields {
		id, err := parseID(f)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	if mapset.NewSet(ids...).Cardinality() != len(ids) {
		return ErrSamePlayers
	}

	result, err := c.playerService.SimulateMatch(ctx, ids[0], ids[1])
	if err != nil {
		return err
	}
	if !result.Applied {
		resp.Text = "Winner " + result.Winner.String() + " not found, the ranking is unchanged\n\n" + printTop(result.Ranking)
		return nil
	}
	winner := result.Winner.String()
	for _, p := range result.Ranking {
		if p.ID == result.Winner {
			winner = p.Username
		}
	}
	resp.Text = "Winner: " + winner + "\n\n" + printTop(result.Ranking)
	return nil
}

func (c *MatchCommand) Help() string {
	return "Simulates a match, the winner gets one point. Usage: /match <id1> <id2>"
}
