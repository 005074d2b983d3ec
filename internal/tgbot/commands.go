package tgbot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goserg/scoreboard/internal/service"
)

type Command interface {
	Run(ctx context.Context, args string, resp *tgbotapi.MessageConfig) error
	Help() string
}

type Commands struct {
	list map[string]Command
}

func NewCommands(ps *service.PlayerService) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"top": &TopCommand{
				playerService: ps,
			},
			"player": &PlayerCommand{
				playerService: ps,
			},
			"match": &MatchCommand{
				playerService: ps,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(ctx context.Context, cmd string, args string, resp *tgbotapi.MessageConfig) error {
	command, ok := uc.list[cmd]
	if !ok {
		return ErrBadRequest
	}
	return command.Run(ctx, args, resp)
}
