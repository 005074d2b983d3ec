package tgbot

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

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

const topUpdate = `{"ok":true,"result":[{"update_id":1,"message":{"message_id":1,"date":0,` +
	`"chat":{"id":42,"type":"private"},"text":"/top",` +
	`"entities":[{"type":"bot_command","offset":0,"length":4}]}}]}`

// fakeTelegram answers getMe, hands out a single /top update and records
// the sent replies.
func fakeTelegram(t *testing.T, sent chan<- string) *httptest.Server {
	t.Helper()
	var served atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"scoreboard","username":"scoreboard_bot"}}`)
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			if served.CompareAndSwap(false, true) {
				_, _ = io.WriteString(w, topUpdate)
				return
			}
			time.Sleep(10 * time.Millisecond)
			_, _ = io.WriteString(w, `{"ok":true,"result":[]}`)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			sent <- r.Form.Get("chat_id") + ":" + r.Form.Get("text")
			_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":2,"date":0,"chat":{"id":42,"type":"private"}}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBot_RunAnswersAndStops(t *testing.T) {
	t.Parallel()
	sent := make(chan string, 4)
	srv := fakeTelegram(t, sent)

	api, err := tgbotapi.NewBotAPIWithClient("token", srv.URL+"/bot%s/%s", srv.Client())
	require.NoError(t, err)

	l := logrus.New()
	l.SetOutput(io.Discard)
	store := memory.New(domain.Player{ID: uuid.New(), Username: "alice", Points: 3})
	ps := service.New(store, metrics.NewService(prometheus.NewRegistry()), l)
	b := newBot(api, ps, l)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()

	select {
	case msg := <-sent:
		assert.Equal(t, "42:🥇. alice (3)\n", msg)
	case <-time.After(5 * time.Second):
		t.Fatal("no reply sent")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestBot_RunCancelledBeforeStart(t *testing.T) {
	t.Parallel()
	srv := fakeTelegram(t, make(chan string, 4))
	api, err := tgbotapi.NewBotAPIWithClient("token", srv.URL+"/bot%s/%s", srv.Client())
	require.NoError(t, err)

	l := logrus.New()
	l.SetOutput(io.Discard)
	ps := service.New(memory.New(), metrics.NewService(prometheus.NewRegistry()), l)
	b := newBot(api, ps, l)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return for a cancelled context")
	}
}
