package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/normalize"
	"github.com/goserg/scoreboard/internal/service"
	"github.com/goserg/scoreboard/internal/storage"
)

type PlayerCommand struct {
	playerService *service.PlayerService
}

func (c *PlayerCommand) Run(ctx context.Context, args string, resp *tgbotapi.MessageConfig) error {
	query := strings.TrimSpace(args)
	if query == "" {
		return errors.New(`the player id or name is required, for example "/player alice"`)
	}
	if id, err := uuid.Parse(query); err == nil {
		return c.byID(ctx, id, resp)
	}
	return c.byName(ctx, query, resp)
}

func (c *PlayerCommand) byID(ctx context.Context, id uuid.UUID, resp *tgbotapi.MessageConfig) error {
	player, err := c.playerService.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return errors.New("player " + id.String() + " not found")
		}
		return err
	}
	resp.Text = printPlayer(player)
	return nil
}

// byName matches usernames case-insensitively. Names are not unique, so
// several matches are listed with their ids instead.
func (c *PlayerCommand) byName(ctx context.Context, name string, resp *tgbotapi.MessageConfig) error {
	ranking, err := c.playerService.ListPlayers(ctx)
	if err != nil {
		return err
	}
	key := normalize.Key(name)
	var found []domain.RankedPlayer
	for _, p := range ranking {
		if normalize.Key(p.Username) == key {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return errors.New("player " + strconv.Quote(normalize.Name(name)) + " not found")
	case 1:
		resp.Text = printPlayer(found[0])
		return nil
	}
	var b strings.Builder
	b.WriteString("Several players are called ")
	b.WriteString(strconv.Quote(normalize.Name(name)))
	b.WriteString(", use the id:\n")
	for _, p := range found {
		b.WriteString(p.ID.String())
		b.WriteString(" ")
		b.WriteString(p.Username)
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(p.Points))
		b.WriteString(")\n")
	}
	resp.Text = b.String()
	return nil
}

func (c *PlayerCommand) Help() string {
	return "Player card. Usage: /player <id or name>"
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.New(strconv.Quote(s) + " is not a player id")
	}
	return id, nil
}

func printPlayer(player domain.RankedPlayer) string {
	var buf strings.Builder
	buf.WriteString("ID: ")
	buf.WriteString(player.ID.String())
	buf.WriteString("\n")
	buf.WriteString("Username: ")
	buf.WriteString(player.Username)
	buf.WriteString("\n")
	buf.WriteString("Rank: ")
	buf.WriteString(domain.Medal(player.Rank))
	buf.WriteString("\n")
	buf.WriteString("Points: ")
	buf.WriteString(strconv.Itoa(player.Points))
	if player.Avatar != "" {
		buf.WriteString("\n")
		buf.WriteString("Avatar: ")
		buf.WriteString(player.Avatar)
	}
	return buf.String()
}
