package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/galo-project/clube-api/internal/platform/logging"
	"github.com/galo-project/clube-api/internal/usecase"
)

const defaultTimeout = 20 * time.Second

// errUpstreamRequest marks network/HTTP-level failures so callers can tell
// them apart from empty-but-successful responses.
var errUpstreamRequest = crerr.New("sports data provider request failed")

type ClientConfig struct {
	HTTPClient *http.Client
	// Host is the API host, e.g. v3.football.api-sports.io. It doubles as
	// the x-rapidapi-host header value.
	Host    string
	APIKey  string
	Timeout time.Duration
	Logger  *logging.Logger
}

// Client talks to the football-data REST API. Responses carry a `response`
// array plus, on paginated routes, a `paging.total` counter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	host := strings.TrimSpace(cfg.Host)
	baseURL := host
	if baseURL != "" && !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		host:       strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		logger:     logger,
	}
}

// FetchTeam returns the club profile with its venue.
func (c *Client) FetchTeam(ctx context.Context, teamID int64) (usecase.ExternalTeam, error) {
	if teamID <= 0 {
		return usecase.ExternalTeam{}, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	var env teamsEnvelope
	query := map[string]string{"id": strconv.FormatInt(teamID, 10)}
	if err := c.doJSON(ctx, "/teams", query, &env); err != nil {
		return usecase.ExternalTeam{}, fmt.Errorf("fetch team id=%d: %w", teamID, err)
	}
	if len(env.Response) == 0 {
		return usecase.ExternalTeam{}, fmt.Errorf("%w: team id=%d", usecase.ErrNoData, teamID)
	}

	item := env.Response[0]
	return usecase.ExternalTeam{
		ID:      item.Team.ID,
		Name:    strings.TrimSpace(item.Team.Name),
		Country: strings.TrimSpace(item.Team.Country),
		Founded: item.Team.Founded,
		Logo:    strings.TrimSpace(item.Team.Logo),
		Venue: usecase.ExternalVenue{
			Name:     strings.TrimSpace(item.Venue.Name),
			Address:  strings.TrimSpace(item.Venue.Address),
			City:     strings.TrimSpace(item.Venue.City),
			Capacity: item.Venue.Capacity,
			Image:    strings.TrimSpace(item.Venue.Image),
		},
	}, nil
}

// FetchSquad returns every squad record for the team and season, aggregated
// across all result pages. Page 1 is fetched first to learn the page count;
// the remaining pages are fetched concurrently and the whole call fails on
// the first page error. Record order is page-ascending, in-page order
// preserved.
func (c *Client) FetchSquad(ctx context.Context, teamID int64, season int) ([]usecase.ExternalPlayerRecord, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}
	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", usecase.ErrInvalidInput)
	}

	items, err := c.fetchPlayerPages(ctx, teamID, season)
	if err != nil {
		return nil, err
	}

	records := make([]usecase.ExternalPlayerRecord, 0, len(items))
	for _, item := range items {
		records = append(records, mapPlayerItem(item))
	}
	return records, nil
}

func (c *Client) fetchPlayerPages(ctx context.Context, teamID int64, season int) ([]playerItem, error) {
	query := func(page int) map[string]string {
		return map[string]string{
			"team":   strconv.FormatInt(teamID, 10),
			"season": strconv.Itoa(season),
			"page":   strconv.Itoa(page),
		}
	}

	var first playersEnvelope
	if err := c.doJSON(ctx, "/players", query(1), &first); err != nil {
		return nil, fmt.Errorf("fetch players page 1: %w", err)
	}
	if len(first.Response) == 0 {
		return nil, fmt.Errorf("%w: players team=%d season=%d", usecase.ErrNoData, teamID, season)
	}

	totalPages := first.Paging.Total
	if totalPages < 1 {
		totalPages = 1
	}

	// One slot per page; goroutines write disjoint indices, so no lock is
	// needed and concatenation order stays deterministic.
	pages := make([][]playerItem, totalPages+1)
	pages[1] = first.Response

	fanout := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for page := 2; page <= totalPages; page++ {
		fanout.Go(func(ctx context.Context) error {
			var env playersEnvelope
			if err := c.doJSON(ctx, "/players", query(page), &env); err != nil {
				return fmt.Errorf("fetch players page %d: %w", page, err)
			}
			pages[page] = env.Response
			return nil
		})
	}
	if err := fanout.Wait(); err != nil {
		return nil, err
	}

	items := make([]playerItem, 0, len(first.Response)*totalPages)
	for page := 1; page <= totalPages; page++ {
		items = append(items, pages[page]...)
	}
	return items, nil
}

// FetchSeasons returns the league's season list, flagged current or not.
func (c *Client) FetchSeasons(ctx context.Context, leagueID int64) ([]usecase.ExternalSeason, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", usecase.ErrInvalidInput)
	}

	var env leaguesEnvelope
	query := map[string]string{"id": strconv.FormatInt(leagueID, 10)}
	if err := c.doJSON(ctx, "/leagues", query, &env); err != nil {
		return nil, fmt.Errorf("fetch league id=%d: %w", leagueID, err)
	}
	if len(env.Response) == 0 {
		return nil, fmt.Errorf("%w: league id=%d", usecase.ErrNoData, leagueID)
	}

	seasons := env.Response[0].Seasons
	out := make([]usecase.ExternalSeason, 0, len(seasons))
	for _, season := range seasons {
		out = append(out, usecase.ExternalSeason{
			Year:    season.Year,
			Current: season.Current,
		})
	}
	return out, nil
}

// FetchStandings returns the provider's standings rows untouched.
func (c *Client) FetchStandings(ctx context.Context, leagueID int64, season int) ([]map[string]any, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", usecase.ErrInvalidInput)
	}
	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", usecase.ErrInvalidInput)
	}

	var env standingsEnvelope
	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(season),
	}
	if err := c.doJSON(ctx, "/standings", query, &env); err != nil {
		return nil, fmt.Errorf("fetch standings league=%d season=%d: %w", leagueID, season, err)
	}
	if len(env.Response) == 0 {
		return nil, fmt.Errorf("%w: standings league=%d season=%d", usecase.ErrNoData, leagueID, season)
	}

	return env.Response, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: send request: %s", errUpstreamRequest, sanitizeSensitiveText(err.Error(), c.apiKey))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", errUpstreamRequest, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "provider request failed",
			"path", path,
			"status", resp.StatusCode,
			"body", abbreviateBody(raw),
		)
		return fmt.Errorf("%w: status=%d body=%s", errUpstreamRequest, resp.StatusCode, abbreviateBody(raw))
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func mapPlayerItem(item playerItem) usecase.ExternalPlayerRecord {
	stats := make([]usecase.ExternalPlayerStat, 0, len(item.Statistics))
	for _, stat := range item.Statistics {
		stats = append(stats, usecase.ExternalPlayerStat{
			League:      strings.TrimSpace(stat.League.Name),
			Season:      stat.League.Season,
			Position:    strings.TrimSpace(stat.Games.Position),
			Appearances: intOrZero(stat.Games.Appearences),
			Goals:       intOrZero(stat.Goals.Total),
			Assists:     intOrZero(stat.Goals.Assists),
			Rating:      parseRating(stat.Games.Rating),
		})
	}

	return usecase.ExternalPlayerRecord{
		ID:          item.Player.ID,
		Name:        strings.TrimSpace(item.Player.Name),
		Age:         intOrZero(item.Player.Age),
		Photo:       strings.TrimSpace(item.Player.Photo),
		Nationality: strings.TrimSpace(item.Player.Nationality),
		Height:      strings.TrimSpace(item.Player.Height),
		Weight:      strings.TrimSpace(item.Player.Weight),
		Stats:       stats,
	}
}

// parseRating handles the provider's rating field, which arrives as a
// decimal string, a number, or null.
func parseRating(value any) *float64 {
	switch typed := value.(type) {
	case nil:
		return nil
	case float64:
		return &typed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func sanitizeSensitiveText(text, secret string) string {
	if secret == "" {
		return text
	}
	return strings.ReplaceAll(text, secret, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

type paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type teamsEnvelope struct {
	Response []teamItem `json:"response"`
}

type teamItem struct {
	Team  teamInfo  `json:"team"`
	Venue venueInfo `json:"venue"`
}

type teamInfo struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Founded int    `json:"founded"`
	Logo    string `json:"logo"`
}

type venueInfo struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
	Image    string `json:"image"`
}

type playersEnvelope struct {
	Response []playerItem `json:"response"`
	Paging   paging       `json:"paging"`
}

type playerItem struct {
	Player     playerInfo       `json:"player"`
	Statistics []playerStatItem `json:"statistics"`
}

type playerInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Age         *int   `json:"age"`
	Photo       string `json:"photo"`
	Nationality string `json:"nationality"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
}

type playerStatItem struct {
	League leagueRef  `json:"league"`
	Games  gamesBlock `json:"games"`
	Goals  goalsBlock `json:"goals"`
}

type leagueRef struct {
	Name   string `json:"name"`
	Season int    `json:"season"`
}

type gamesBlock struct {
	// The provider spells the field "appearences".
	Appearences *int   `json:"appearences"`
	Position    string `json:"position"`
	Rating      any    `json:"rating"`
}

type goalsBlock struct {
	Total   *int `json:"total"`
	Assists *int `json:"assists"`
}

type leaguesEnvelope struct {
	Response []leagueItem `json:"response"`
}

type leagueItem struct {
	Seasons []seasonItem `json:"seasons"`
}

type seasonItem struct {
	Year    int  `json:"year"`
	Current bool `json:"current"`
}

type standingsEnvelope struct {
	Response []map[string]any `json:"response"`
}
