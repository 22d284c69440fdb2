package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/galo-project/clube-api/external/apifootball"
	"github.com/galo-project/clube-api/internal/config"
	"github.com/galo-project/clube-api/internal/interfaces/httpapi"
	"github.com/galo-project/clube-api/internal/platform/logging"
	"github.com/galo-project/clube-api/internal/scrape"
	"github.com/galo-project/clube-api/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	clientLogger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(clientLogger)

	footballClient := apifootball.NewClient(apifootball.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.FootballAPITimeout},
		Host:       cfg.FootballAPIHost,
		APIKey:     cfg.FootballAPIKey,
		Timeout:    cfg.FootballAPITimeout,
		Logger:     clientLogger,
	})

	siteClient := scrape.NewClient(scrape.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.ClubSiteTimeout},
		PageURL:    cfg.ClubSiteURL,
		DateOrder:  cfg.ClubSiteDateOrder,
		Logger:     clientLogger,
	})

	rosterSvc := usecase.NewRosterService(footballClient, cfg.TeamID)
	playerSvc := usecase.NewPlayerService(footballClient, cfg.TeamID)
	seasonSvc := usecase.NewSeasonService(footballClient, cfg.LeagueID, logger)
	matchSvc := usecase.NewMatchService(siteClient)
	clubSvc := usecase.NewClubService(footballClient, cfg.TeamID, cfg.LeagueID, cfg.ClubAbbreviation)

	handler := httpapi.NewHandler(rosterSvc, playerSvc, seasonSvc, matchSvc, clubSvc, cfg.DefaultSeason, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
