package usecase

import (
	"context"

	"github.com/galo-project/clube-api/internal/domain/match"
)

type stubProvider struct {
	team         ExternalTeam
	teamErr      error
	squad        []ExternalPlayerRecord
	squadErr     error
	seasons      []ExternalSeason
	seasonsErr   error
	standings    []map[string]any
	standingsErr error

	squadCalls int
}

func (s *stubProvider) FetchTeam(ctx context.Context, teamID int64) (ExternalTeam, error) {
	return s.team, s.teamErr
}

func (s *stubProvider) FetchSquad(ctx context.Context, teamID int64, season int) ([]ExternalPlayerRecord, error) {
	s.squadCalls++
	return s.squad, s.squadErr
}

func (s *stubProvider) FetchSeasons(ctx context.Context, leagueID int64) ([]ExternalSeason, error) {
	return s.seasons, s.seasonsErr
}

func (s *stubProvider) FetchStandings(ctx context.Context, leagueID int64, season int) ([]map[string]any, error) {
	return s.standings, s.standingsErr
}

type stubMatchProvider struct {
	next match.NextMatch
	err  error
}

func (s *stubMatchProvider) FetchNextMatch(ctx context.Context) (match.NextMatch, error) {
	return s.next, s.err
}

func ratingPtr(v float64) *float64 {
	return &v
}
