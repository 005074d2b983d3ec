package tgbot

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/goserg/scoreboard/internal/config"
	"github.com/goserg/scoreboard/internal/service"
)

var ErrBadRequest = errors.New("unknown command, try /help")

type Bot struct {
	bot *tgbotapi.BotAPI
	log *logrus.Entry

	commands *Commands
}

func New(ps *service.PlayerService, cfg config.Config, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("telegram api token: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}
	return newBot(bot, ps, log), nil
}

func newBot(bot *tgbotapi.BotAPI, ps *service.PlayerService, log *logrus.Logger) *Bot {
	return &Bot{
		bot:      bot,
		log:      log.WithField("from", "tg-bot"),
		commands: NewCommands(ps),
	}
}

// Run long-polls updates until ctx is done.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	defer b.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	log := b.log.WithFields(logrus.Fields{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	})
	log.Debug("update received")

	msg := b.reply(ctx, update.Message)
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

func (b *Bot) reply(ctx context.Context, m *tgbotapi.Message) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(m.Chat.ID, "")
	if err := b.commands.RunCommand(ctx, m.Command(), m.CommandArguments(), &msg); err != nil {
		msg.Text = err.Error()
	}
	return msg
}

