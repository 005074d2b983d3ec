package tgbot

import (
	"context"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ context.Context, args string, resp *tgbotapi.MessageConfig) error {
	if command, ok := c.commands[strings.TrimPrefix(strings.TrimSpace(args), "/")]; ok {
		resp.Text = command.Help()
		return nil
	}
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range names {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString(" - ")
		b.WriteString(c.commands[name].Help())
		b.WriteString("\n")
	}
	b.WriteString("Use /help and a command name for details")
	resp.Text = b.String()
	return nil
}

func (c *HelpCommand) Help() string {
	return "Lists the available commands"
}
