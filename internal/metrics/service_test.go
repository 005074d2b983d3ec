package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncPlayersCreated()
	s.IncPlayersCreated()
	s.IncPlayersDeleted(3)
	s.IncMatchesSimulated()
	s.IncMatchesNoop()

	assert.Equal(t, 2.0, testutil.ToFloat64(s.PlayersCreated))
	assert.Equal(t, 3.0, testutil.ToFloat64(s.PlayersDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.MatchesSimulated))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.MatchesNoop))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.StoreErrors))
}

func TestNewHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.IncMatchesSimulated()

	rec := httptest.NewRecorder()
	NewHandler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "scoreboard_matches_simulated_total 1")
}
