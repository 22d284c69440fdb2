package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/galo-project/clube-api/internal/domain/player"
	"github.com/galo-project/clube-api/internal/usecase"
)

type Handler struct {
	rosterService *usecase.RosterService
	playerService *usecase.PlayerService
	seasonService *usecase.SeasonService
	matchService  *usecase.MatchService
	clubService   *usecase.ClubService
	logger        *slog.Logger
	validator     *validator.Validate
	defaultSeason int
}

func NewHandler(
	rosterService *usecase.RosterService,
	playerService *usecase.PlayerService,
	seasonService *usecase.SeasonService,
	matchService *usecase.MatchService,
	clubService *usecase.ClubService,
	defaultSeason int,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		rosterService: rosterService,
		playerService: playerService,
		seasonService: seasonService,
		matchService:  matchService,
		clubService:   clubService,
		logger:        logger,
		validator:     validator.New(),
		defaultSeason: defaultSeason,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// NextMatch serves the scraped fixture card. Scrape failures surface as a
// plain 500 error body; the cause is only logged.
func (h *Handler) NextMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NextMatch")
	defer span.End()

	next, err := h.matchService.NextMatch(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "next match fetch failed", "error", err)
		writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: "failed to fetch next match"})
		return
	}

	writeJSON(ctx, w, http.StatusOK, next)
}

func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Team")
	defer span.End()

	club, err := h.clubService.ClubInfo(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "club info fetch failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, club)
}

func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Roster")
	defer span.End()

	season, err := h.seasonFromQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.rosterService.Roster(ctx, season)
	if err != nil {
		// An empty squad is a valid answer for off seasons: render the
		// empty buckets instead of failing the page.
		if errors.Is(err, usecase.ErrNoData) {
			h.logger.WarnContext(ctx, "no squad data", "season", season)
			writeJSON(ctx, w, http.StatusOK, rosterDTO{
				Season:  season,
				Groups:  groups,
				Message: fmt.Sprintf("no players found for season %d", season),
			})
			return
		}

		h.logger.ErrorContext(ctx, "roster fetch failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, rosterDTO{Season: season, Groups: groups})
}

func (h *Handler) PlayerDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerDetails")
	defer span.End()

	playerID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("playerID")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: player id must be numeric", usecase.ErrInvalidInput))
		return
	}

	season, err := h.seasonFromQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.playerService.PlayerDetail(ctx, playerID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "player detail fetch failed", "player_id", playerID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, detail)
}

// Seasons always answers 200: the season picker degrades to an empty list
// when upstream is down.
func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Seasons")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, h.seasonService.PastSeasons(ctx))
}

func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Standings")
	defer span.End()

	season, err := h.seasonFromQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.clubService.Standings(ctx, season)
	if err != nil {
		h.logger.ErrorContext(ctx, "standings fetch failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, rows)
}

// seasonFromQuery reads the optional season query parameter, falling back to
// the configured default season.
func (h *Handler) seasonFromQuery(ctx context.Context, r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("season"))
	if raw == "" {
		return h.defaultSeason, nil
	}

	season, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: season must be a year", usecase.ErrInvalidInput)
	}
	if err := h.validateRequest(ctx, seasonQuery{Season: season}); err != nil {
		return 0, err
	}

	return season, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type seasonQuery struct {
	Season int `validate:"required,gte=1900,lte=2999"`
}

type rosterDTO struct {
	Season  int                         `json:"season"`
	Groups  map[string][]player.Summary `json:"groups"`
	Message string                      `json:"message,omitempty"`
}
