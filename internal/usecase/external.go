package usecase

import (
	"context"

	"github.com/galo-project/clube-api/internal/domain/match"
)

// ExternalTeam is a club profile as returned by the sports-data provider,
// validated and defaulted at the client boundary.
type ExternalTeam struct {
	ID      int64
	Name    string
	Country string
	Founded int
	Logo    string
	Venue   ExternalVenue
}

type ExternalVenue struct {
	Name     string
	Address  string
	City     string
	Capacity int
	Image    string
}

// ExternalPlayerRecord is one raw squad entry: the player profile plus one
// stat line per competition the player appeared in during the fetched season.
type ExternalPlayerRecord struct {
	ID          int64
	Name        string
	Age         int
	Photo       string
	Nationality string
	Height      string
	Weight      string
	Stats       []ExternalPlayerStat
}

// ExternalPlayerStat mirrors one statistics entry of a squad record. Rating
// is nil when the competition does not report one. Position is the raw
// provider label, empty when absent.
type ExternalPlayerStat struct {
	League      string
	Season      int
	Position    string
	Appearances int
	Goals       int
	Assists     int
	Rating      *float64
}

type ExternalSeason struct {
	Year    int
	Current bool
}

// SportsDataProvider is the upstream football API. Implementations fetch
// fresh data per call; nothing is cached between calls.
type SportsDataProvider interface {
	FetchTeam(ctx context.Context, teamID int64) (ExternalTeam, error)
	FetchSquad(ctx context.Context, teamID int64, season int) ([]ExternalPlayerRecord, error)
	FetchSeasons(ctx context.Context, leagueID int64) ([]ExternalSeason, error)
	FetchStandings(ctx context.Context, leagueID int64, season int) ([]map[string]any, error)
}

// NextMatchProvider yields the club's next scheduled game, scraped from the
// club website.
type NextMatchProvider interface {
	FetchNextMatch(ctx context.Context) (match.NextMatch, error)
}
