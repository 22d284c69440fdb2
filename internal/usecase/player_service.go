package usecase

import (
	"context"
	"fmt"

	"github.com/galo-project/clube-api/internal/domain/player"
)

// PlayerService resolves a single player inside the fetched squad batch and
// folds the per-competition statistics into season totals.
type PlayerService struct {
	provider SportsDataProvider
	teamID   int64
}

func NewPlayerService(provider SportsDataProvider, teamID int64) *PlayerService {
	return &PlayerService{
		provider: provider,
		teamID:   teamID,
	}
}

// PlayerDetail fetches the squad for a season, locates the requested player
// and returns their profile with aggregate stats. ErrNotFound when the id is
// absent from the batch.
func (s *PlayerService) PlayerDetail(ctx context.Context, playerID int64, season int) (player.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.PlayerDetail")
	defer span.End()

	if playerID <= 0 {
		return player.Detail{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}
	if season <= 0 {
		return player.Detail{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	records, err := s.provider.FetchSquad(ctx, s.teamID, season)
	if err != nil {
		return player.Detail{}, fmt.Errorf("fetch squad season=%d: %w", season, err)
	}

	var record ExternalPlayerRecord
	found := false
	for _, candidate := range records {
		if candidate.ID == playerID {
			record = candidate
			found = true
			break
		}
	}
	if !found {
		return player.Detail{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	stats := make([]player.Stat, 0, len(record.Stats))
	for _, stat := range record.Stats {
		position := stat.Position
		if position == "" {
			position = player.PositionUnknown
		}
		stats = append(stats, player.Stat{
			League:      stat.League,
			Season:      stat.Season,
			Position:    position,
			Appearances: stat.Appearances,
			Goals:       stat.Goals,
			Assists:     stat.Assists,
			Rating:      stat.Rating,
		})
	}

	detail := player.Detail{
		Summary: summarizeRecord(record),
		Stats:   stats,
	}
	detail.Position = player.TranslatePosition(canonicalPosition(stats))
	detail.Nationality = record.Nationality
	detail.Height = record.Height
	detail.Weight = record.Weight
	detail.Appearances, detail.Goals, detail.Assists = sumCounts(stats)
	detail.AvgRating = averageRating(stats)

	return detail, nil
}

// canonicalPosition is the first stat position that is not the unknown
// sentinel.
func canonicalPosition(stats []player.Stat) string {
	for _, stat := range stats {
		if stat.Position != player.PositionUnknown {
			return stat.Position
		}
	}
	return player.PositionUnknown
}

func sumCounts(stats []player.Stat) (appearances, goals, assists int) {
	for _, stat := range stats {
		appearances += stat.Appearances
		goals += stat.Goals
		assists += stat.Assists
	}
	return appearances, goals, assists
}

// averageRating is the arithmetic mean over stat entries that report a
// rating, rendered to two decimals. Entries without a rating count neither
// toward the sum nor the divisor; with no rated entries at all the sentinel
// is returned instead of zero.
func averageRating(stats []player.Stat) string {
	sum := 0.0
	rated := 0
	for _, stat := range stats {
		if stat.Rating == nil {
			continue
		}
		sum += *stat.Rating
		rated++
	}
	if rated == 0 {
		return player.RatingUnavailable
	}
	return fmt.Sprintf("%.2f", sum/float64(rated))
}
