package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/dashboard", handler.GetDashboard)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/team/metrics", handler.GetTeamMetrics)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatchReport)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
}

func registerCaptureRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches/{matchID}/events", handler.RegisterMatchAction)
	mux.HandleFunc("POST /v1/matches/{matchID}/finalize", handler.FinalizeMatch)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalToken string) {
	mux.Handle("POST /v1/internal/refresh", RequireInternalToken(internalToken, http.HandlerFunc(handler.RefreshReports)))
}
