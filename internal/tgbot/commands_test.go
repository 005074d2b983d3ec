package tgbot

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/metrics"
	"github.com/goserg/scoreboard/internal/service"
	"github.com/goserg/scoreboard/internal/storage/memory"
)

func newTestCommands(t *testing.T, players ...domain.Player) (*Commands, *memory.Storage) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	store := memory.New(players...)
	ps := service.New(store, metrics.NewService(prometheus.NewRegistry()), l,
		service.WithCoin(func() bool { return true }))
	return NewCommands(ps), store
}

func run(t *testing.T, c *Commands, cmd, args string) (string, error) {
	t.Helper()
	msg := tgbotapi.NewMessage(1, "")
	err := c.RunCommand(context.Background(), cmd, args, &msg)
	return msg.Text, err
}

func TestTopCommand(t *testing.T) {
	t.Parallel()
	var players []domain.Player
	for i := 0; i < 12; i++ {
		players = append(players, domain.Player{ID: uuid.New(), Username: fmt.Sprintf("p%02d", i), Points: i})
	}
	c, _ := newTestCommands(t, players...)

	text, err := run(t, c, "top", "")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, topSize)
	assert.Equal(t, "🥇. p11 (11)", lines[0])
	assert.Equal(t, "🥈. p10 (10)", lines[1])
	assert.Equal(t, "🥉. p09 (9)", lines[2])
	assert.Equal(t, "4. p08 (8)", lines[3])

	empty, _ := newTestCommands(t)
	text, err = run(t, empty, "top", "")
	require.NoError(t, err)
	assert.Equal(t, "No players yet", text)
}

func TestPlayerCommand(t *testing.T) {
	t.Parallel()
	a := domain.Player{ID: uuid.New(), Username: "alice", Points: 5}
	b := domain.Player{ID: uuid.New(), Username: "bob", Points: 7, Avatar: "https://example.com/b.png"}
	c, _ := newTestCommands(t, a, b)

	tests := []struct {
		name    string
		args    string
		want    []string
		wantErr string
	}{
		{name: "second place", args: a.ID.String(), want: []string{"Username: alice", "Rank: 🥈", "Points: 5"}},
		{name: "with avatar", args: b.ID.String(), want: []string{"Rank: 🥇", "Avatar: https://example.com/b.png"}},
		{name: "no args", wantErr: "player id or name is required"},
		{name: "by name", args: "  ALICE ", want: []string{"ID: " + a.ID.String(), "Rank: 🥈"}},
		{name: "unknown name", args: "dave", wantErr: `player "dave" not found`},
		{name: "unknown", args: uuid.NewString(), wantErr: "not found"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			text, err := run(t, c, "player", tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, text, w)
			}
		})
	}
}

func TestPlayerCommand_AmbiguousName(t *testing.T) {
	t.Parallel()
	first := domain.Player{ID: uuid.New(), Username: "Zoé", Points: 1}
	second := domain.Player{ID: uuid.New(), Username: "ZOÉ", Points: 2}
	c, _ := newTestCommands(t, first, second, domain.Player{ID: uuid.New(), Username: "bob"})

	text, err := run(t, c, "player", "zoé")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, `Several players are called "zoé"`))
	assert.Contains(t, text, first.ID.String())
	assert.Contains(t, text, second.ID.String())
}

func TestMatchCommand(t *testing.T) {
	t.Parallel()
	a := domain.Player{ID: uuid.New(), Username: "alice", Points: 5}
	b := domain.Player{ID: uuid.New(), Username: "bob", Points: 5}
	c, store := newTestCommands(t, a, b)

	text, err := run(t, c, "match", b.ID.String()+" "+a.ID.String())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Winner: bob\n"))
	assert.Contains(t, text, "🥇. bob (6)")

	got, err := store.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Points)

	text, err = run(t, c, "match", uuid.NewString()+" "+a.ID.String())
	require.NoError(t, err)
	assert.Contains(t, text, "the ranking is unchanged")

	_, err = run(t, c, "match", a.ID.String()+" "+a.ID.String())
	assert.ErrorIs(t, err, ErrSamePlayers)

	_, err = run(t, c, "match", a.ID.String())
	assert.ErrorIs(t, err, ErrMatchUsage)
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()
	c, _ := newTestCommands(t)

	text, err := run(t, c, "help", "")
	require.NoError(t, err)
	for _, name := range []string{"/help", "/match", "/player", "/start", "/top"} {
		assert.Contains(t, text, name)
	}

	text, err = run(t, c, "start", "/top")
	require.NoError(t, err)
	assert.Equal(t, (&TopCommand{}).Help(), text)
}

func TestBot_Reply(t *testing.T) {
	t.Parallel()
	c, _ := newTestCommands(t)
	b := &Bot{commands: c}

	command := func(text string) *tgbotapi.Message {
		return &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: 42},
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(strings.Fields(text)[0])},
			},
		}
	}

	msg := b.reply(context.Background(), command("/unknown"))
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, ErrBadRequest.Error(), msg.Text)

	msg = b.reply(context.Background(), command("/top"))
	assert.Equal(t, "No players yet", msg.Text)
}
