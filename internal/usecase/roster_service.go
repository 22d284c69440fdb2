package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/galo-project/clube-api/internal/domain/player"
)

// RosterService builds the position-grouped squad view for one season.
type RosterService struct {
	provider SportsDataProvider
	teamID   int64
}

func NewRosterService(provider SportsDataProvider, teamID int64) *RosterService {
	return &RosterService{
		provider: provider,
		teamID:   teamID,
	}
}

// Roster fetches the full squad for a season and groups it into the five
// fixed position buckets. An upstream empty result surfaces as all-empty
// buckets plus ErrNoData so the caller can render a "no players" state
// instead of failing.
func (s *RosterService) Roster(ctx context.Context, season int) (map[string][]player.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Roster")
	defer span.End()

	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	records, err := s.provider.FetchSquad(ctx, s.teamID, season)
	if err != nil {
		return player.GroupByBucket(nil), fmt.Errorf("fetch squad season=%d: %w", season, err)
	}

	summaries := make([]player.Summary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, summarizeRecord(record))
	}

	return player.GroupByBucket(summaries), nil
}

// summarizeRecord normalizes one raw squad entry into a roster card. The
// position comes from the first statistics entry.
func summarizeRecord(record ExternalPlayerRecord) player.Summary {
	age := player.AgeUnknown
	if record.Age > 0 {
		age = strconv.Itoa(record.Age)
	}

	photo := record.Photo
	if photo == "" {
		photo = player.DefaultPhoto
	}

	position := player.PositionUnknown
	if len(record.Stats) > 0 && record.Stats[0].Position != "" {
		position = record.Stats[0].Position
	}

	return player.Summary{
		ID:       record.ID,
		Name:     record.Name,
		Age:      age,
		Photo:    photo,
		Position: position,
	}
}
