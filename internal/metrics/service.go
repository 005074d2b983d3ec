package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

type Service struct {
	PlayersCreated     prometheus.Counter
	PlayersDeleted     prometheus.Counter
	PointsUpdates      prometheus.Counter
	MatchesSimulated   prometheus.Counter
	MatchesNoop        prometheus.Counter
	StoreErrors        prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

// NewHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the counters.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlayersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreboard_players_created_total",
			Help: "The total number of players created.",
		}),
		PlayersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreboard_players_deleted_total",
			Help: "The total number of players deleted.",
		}),
		PointsUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreboard_points_updates_total",
			Help: "The total number of point deltas applied to an existing player.",
		}),
		MatchesSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreboard_matches_simulated_total",
			Help: "The total number of simulated matches.",
		}),
		MatchesNoop: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreboard_matches_noop_total",
			Help: "The total number of simulated matches whose winner id matched no player.",
		}),
		StoreErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreboard_store_errors_total",
			Help: "The total number of failed player storage calls.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scoreboard_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PlayersCreated,
		s.PlayersDeleted,
		s.PointsUpdates,
		s.MatchesSimulated,
		s.MatchesNoop,
		s.StoreErrors,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPlayersCreated() {
	s.PlayersCreated.Inc()
}

func (s *Service) IncPlayersDeleted(n int64) {
	s.PlayersDeleted.Add(float64(n))
}

func (s *Service) IncPointsUpdates() {
	s.PointsUpdates.Inc()
}

func (s *Service) IncMatchesSimulated() {
	s.MatchesSimulated.Inc()
}

func (s *Service) IncMatchesNoop() {
	s.MatchesNoop.Inc()
}

func (s *Service) IncStoreErrors() {
	s.StoreErrors.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
