package usecase

import (
	"context"
	"fmt"

	"github.com/galo-project/clube-api/internal/domain/team"
)

// ClubService serves the club snapshot and the league standings
// pass-through.
type ClubService struct {
	provider     SportsDataProvider
	teamID       int64
	leagueID     int64
	abbreviation string
}

func NewClubService(provider SportsDataProvider, teamID, leagueID int64, abbreviation string) *ClubService {
	return &ClubService{
		provider:     provider,
		teamID:       teamID,
		leagueID:     leagueID,
		abbreviation: abbreviation,
	}
}

func (s *ClubService) ClubInfo(ctx context.Context) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.ClubInfo")
	defer span.End()

	external, err := s.provider.FetchTeam(ctx, s.teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("fetch team: %w", err)
	}

	return team.Team{
		ID:           external.ID,
		Name:         external.Name,
		Logo:         external.Logo,
		Abbreviation: s.abbreviation,
		Country:      external.Country,
		Founded:      external.Founded,
		Venue: team.Venue{
			Name:     external.Venue.Name,
			Address:  external.Venue.Address,
			City:     external.Venue.City,
			Capacity: external.Venue.Capacity,
			Image:    external.Venue.Image,
		},
	}, nil
}

// Standings forwards the provider's standings rows untouched. The frontend
// renders the provider's own table shape.
func (s *ClubService) Standings(ctx context.Context, season int) ([]map[string]any, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Standings")
	defer span.End()

	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	rows, err := s.provider.FetchStandings(ctx, s.leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("fetch standings season=%d: %w", season, err)
	}

	return rows, nil
}
