package metrics

// Metrics records scoreboard events.
type Metrics interface {
	IncPlayersCreated()
	IncPlayersDeleted(n int64)
	IncPointsUpdates()
	IncMatchesSimulated()
	IncMatchesNoop()
	IncStoreErrors()
	SetStartupTime(seconds float64)
}
