package usecase

import (
	"context"
	"log/slog"
	"sort"
)

// SeasonService lists the completed seasons available for the configured
// league. Season selection is a non-critical enhancement: any upstream
// failure degrades to an empty list instead of an error.
type SeasonService struct {
	provider SportsDataProvider
	leagueID int64
	logger   *slog.Logger
}

func NewSeasonService(provider SportsDataProvider, leagueID int64, logger *slog.Logger) *SeasonService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SeasonService{
		provider: provider,
		leagueID: leagueID,
		logger:   logger,
	}
}

// PastSeasons returns the league's non-current season years, most recent
// first. Never returns an error.
func (s *SeasonService) PastSeasons(ctx context.Context) []int {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.PastSeasons")
	defer span.End()

	seasons, err := s.provider.FetchSeasons(ctx, s.leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch seasons failed, returning empty list", "league_id", s.leagueID, "error", err)
		return []int{}
	}

	years := make([]int, 0, len(seasons))
	for _, season := range seasons {
		if season.Current {
			continue
		}
		years = append(years, season.Year)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
