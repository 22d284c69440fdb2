package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/galo-project/clube-api/internal/domain/match"
	"github.com/galo-project/clube-api/internal/platform/logging"
)

// ErrMatchNotFound is returned when the club site page carries no scheduled
// match block.
var ErrMatchNotFound = errors.New("next match block not found")

// DateOrder says how to read the two 2-digit groups that follow the year in
// the site's date run. The source site does not document its order, so this
// is configuration rather than a hard rule.
type DateOrder string

const (
	// MonthDay reads the run as YYYY?MM?DD, the order observed on the club
	// site.
	MonthDay DateOrder = "month-day"
	DayMonth DateOrder = "day-month"
)

const defaultTimeout = 15 * time.Second

// dateRunRegex matches the first YYYY?NN?NN digit run, with any single
// non-digit (or none) between the groups.
var dateRunRegex = regexp.MustCompile(`(\d{4})\D?(\d{2})\D?(\d{2})`)

// matchInfoRegex splits "<competition> DD/MM às HH:MM | <venue>" so the
// leading competition name can be emphasized.
var matchInfoRegex = regexp.MustCompile(`^([\p{L}\p{N}\s]+?) (\d{2}/\d{2} às \d{2}:\d{2} \| .+)$`)

type ClientConfig struct {
	HTTPClient *http.Client
	// PageURL is the club website page carrying the match list markup.
	PageURL   string
	DateOrder DateOrder
	Logger    *logging.Logger
}

// Client fetches the club website and extracts the next scheduled match.
type Client struct {
	httpClient *http.Client
	pageURL    string
	dateOrder  DateOrder
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	order := cfg.DateOrder
	if order != DayMonth {
		order = MonthDay
	}

	return &Client{
		httpClient: httpClient,
		pageURL:    strings.TrimSpace(cfg.PageURL),
		dateOrder:  order,
		logger:     logger,
	}
}

func (c *Client) FetchNextMatch(ctx context.Context) (match.NextMatch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL, nil)
	if err != nil {
		return match.NextMatch{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return match.NextMatch{}, fmt.Errorf("fetch club site: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.WarnContext(ctx, "club site returned non-200",
			"status", resp.StatusCode,
			"body", strings.TrimSpace(string(body)),
		)
		return match.NextMatch{}, fmt.Errorf("fetch club site: status=%d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return match.NextMatch{}, fmt.Errorf("parse club site html: %w", err)
	}

	return ExtractNextMatch(doc, c.dateOrder)
}

// ExtractNextMatch pulls the first scheduled-match block out of the club
// site document. Home and away sides are read independently; the match-info
// string is trimmed, its date reduced to DD/MM and the competition name
// wrapped in <strong>.
func ExtractNextMatch(doc *goquery.Document, order DateOrder) (match.NextMatch, error) {
	block := doc.Find(".lista-jogos-jogo").First()
	if block.Length() == 0 {
		return match.NextMatch{}, ErrMatchNotFound
	}

	info := strings.TrimSpace(block.Find(".lista-jogos-jogo-local").Text())
	info = rewriteMatchDate(info, order)
	info = emphasizeCompetition(info)

	return match.NextMatch{
		HomeTeam:  extractSide(block, ".mandante"),
		AwayTeam:  extractSide(block, ".visitante"),
		MatchInfo: info,
	}, nil
}

func extractSide(block *goquery.Selection, role string) match.Side {
	abbr := block.Find(role + " abbr").First()
	name, _ := abbr.Attr("title")
	logo, _ := block.Find(role + " img").First().Attr("src")

	return match.Side{
		Name:         strings.TrimSpace(name),
		Logo:         strings.TrimSpace(logo),
		Abbreviation: strings.TrimSpace(abbr.Text()),
	}
}

// rewriteMatchDate replaces the first YYYY?NN?NN run with just the day/month
// pair in DD/MM form, dropping the year. Single pass; later runs are left
// alone.
func rewriteMatchDate(text string, order DateOrder) string {
	loc := dateRunRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}

	first := text[loc[4]:loc[5]]
	second := text[loc[6]:loc[7]]
	day, month := second, first
	if order == DayMonth {
		day, month = first, second
	}

	return text[:loc[0]] + day + "/" + month + text[loc[1]:]
}

// emphasizeCompetition wraps the leading competition name in <strong> when
// the info string has the expected "name DD/MM às HH:MM | venue" shape, and
// passes anything else through unchanged.
func emphasizeCompetition(text string) string {
	groups := matchInfoRegex.FindStringSubmatch(text)
	if groups == nil {
		return text
	}
	return "<strong>" + groups[1] + "</strong> " + groups[2]
}
