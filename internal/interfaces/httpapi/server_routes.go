package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerClubRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /next-match", handler.NextMatch)
	mux.HandleFunc("GET /team", handler.Team)
	mux.HandleFunc("GET /roster", handler.Roster)
	mux.HandleFunc("GET /players/{playerID}", handler.PlayerDetails)
	mux.HandleFunc("GET /seasons", handler.Seasons)
	mux.HandleFunc("GET /standings", handler.Standings)
}
