package webpath

const (
	Home         = "/"
	Players      = "/players"
	DeletePlayer = Players + "/:id/delete"
	Match        = "/match"
	Health       = "/health"
	Metrics      = "/metrics"

	Api           = "/api"
	ApiPlayer     = Api + "/player"
	ApiPlayerByID = ApiPlayer + "/:id"
	ApiPlayers    = Api + "/players"
	ApiMatch      = ApiPlayers + "/match"
)

func Path() map[string]string {
	return map[string]string{
		"Home":       Home,
		"Players":    Players,
		"Match":      Match,
		"Api":        Api,
		"ApiPlayers": ApiPlayers,
	}
}
