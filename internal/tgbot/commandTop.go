package tgbot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/service"
)

const topSize = 10

type TopCommand struct {
	playerService *service.PlayerService
}

func (c *TopCommand) Run(ctx context.Context, _ string, resp *tgbotapi.MessageConfig) error {
	ranking, err := c.playerService.ListPlayers(ctx)
	if err != nil {
		return err
	}
	resp.Text = printTop(ranking)
	return nil
}

func (c *TopCommand) Help() string {
	return "Top 10 players by points"
}

func printTop(ranking []domain.RankedPlayer) string {
	if len(ranking) == 0 {
		return "No players yet"
	}
	var buffer strings.Builder
	for i := range ranking {
		if i >= topSize {
			break
		}
		buffer.WriteString(domain.Medal(ranking[i].Rank))
		buffer.WriteString(". ")
		buffer.WriteString(ranking[i].Username)
		buffer.WriteString(" (")
		buffer.WriteString(strconv.Itoa(ranking[i].Points))
		buffer.WriteString(")\n")
	}
	return buffer.String()
}
