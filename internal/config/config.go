package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/galo-project/clube-api/internal/platform/logging"
	"github.com/galo-project/clube-api/internal/scrape"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string

	FootballAPIHost    string
	FootballAPIKey     string
	FootballAPITimeout time.Duration

	// TeamID and LeagueID scope every upstream query to the club and its
	// primary league.
	TeamID           int64
	LeagueID         int64
	ClubAbbreviation string
	DefaultSeason    int

	ClubSiteURL       string
	ClubSiteTimeout   time.Duration
	ClubSiteDateOrder scrape.DateOrder

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := getEnvAsDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	apiKey := strings.TrimSpace(getEnv("FOOTBALL_API_KEY", ""))
	if apiKey == "" {
		return Config{}, fmt.Errorf("FOOTBALL_API_KEY is required")
	}

	apiTimeout, err := getEnvAsDuration("FOOTBALL_API_TIMEOUT", 20*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_TIMEOUT: %w", err)
	}

	teamID, err := getEnvAsInt64("TEAM_ID", 1062)
	if err != nil {
		return Config{}, fmt.Errorf("parse TEAM_ID: %w", err)
	}
	if teamID <= 0 {
		return Config{}, fmt.Errorf("TEAM_ID must be > 0")
	}

	leagueID, err := getEnvAsInt64("LEAGUE_ID", 71)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_ID: %w", err)
	}
	if leagueID <= 0 {
		return Config{}, fmt.Errorf("LEAGUE_ID must be > 0")
	}

	defaultSeason, err := getEnvAsInt("DEFAULT_SEASON", 2023)
	if err != nil {
		return Config{}, fmt.Errorf("parse DEFAULT_SEASON: %w", err)
	}
	if defaultSeason <= 0 {
		return Config{}, fmt.Errorf("DEFAULT_SEASON must be > 0")
	}

	siteTimeout, err := getEnvAsDuration("CLUB_SITE_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUB_SITE_TIMEOUT: %w", err)
	}

	dateOrder, err := parseDateOrder(getEnv("CLUB_SITE_DATE_ORDER", string(scrape.MonthDay)))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "clube-api"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":3001"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		FootballAPIHost:    getEnv("FOOTBALL_API_HOST", "v3.football.api-sports.io"),
		FootballAPIKey:     apiKey,
		FootballAPITimeout: apiTimeout,
		TeamID:             teamID,
		LeagueID:           leagueID,
		ClubAbbreviation:   getEnv("CLUB_ABBREVIATION", "CAM"),
		DefaultSeason:      defaultSeason,
		ClubSiteURL:        getEnv("CLUB_SITE_URL", "https://atletico.com.br"),
		ClubSiteTimeout:    siteTimeout,
		ClubSiteDateOrder:  dateOrder,
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	return cfg, nil
}

// SlogLevel converts the zap-typed level for the slog handler at the HTTP
// edge.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case logging.LevelDebug:
		return slog.LevelDebug
	case logging.LevelWarn:
		return slog.LevelWarn
	case logging.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseDateOrder(v string) (scrape.DateOrder, error) {
	value := scrape.DateOrder(strings.ToLower(strings.TrimSpace(v)))
	switch value {
	case scrape.MonthDay, scrape.DayMonth:
		return value, nil
	default:
		return "", fmt.Errorf("invalid CLUB_SITE_DATE_ORDER %q: valid values are %s, %s", v, scrape.MonthDay, scrape.DayMonth)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsInt64(key string, fallback int64) (int64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if out <= 0 {
		return 0, fmt.Errorf("duration must be > 0")
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
