package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"clashberry/internal/config"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultUpdateInterval is the refresh interval when none is configured
const DefaultUpdateInterval = 5 * time.Minute

// Config holds application configuration
type Config struct {
	APIBaseURL     string
	HTTPTimeout    time.Duration
	ClanTags       []string
	UpdateInterval time.Duration
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	err := godotenv.Load()

	production := os.Getenv("ENV") == "production"
	if production {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	level, known := parseLogLevel(levelStr, production)
	zerolog.SetGlobalLevel(level)
	if !known {
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// parseLogLevel maps a LOGLEVEL value to a zerolog level. An empty value
// picks warn in production and info elsewhere.
func parseLogLevel(levelStr string, production bool) (zerolog.Level, bool) {
	switch levelStr {
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "fatal":
		return zerolog.FatalLevel, true
	case "panic":
		return zerolog.PanicLevel, true
	case "disabled":
		return zerolog.Disabled, true
	case "":
		if production {
			return zerolog.WarnLevel, true
		}
		return zerolog.InfoLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("CLASHBERRY_API_URL")), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("CLASHBERRY_API_URL environment variable is required")
	}

	timeout := config.DefaultHTTPClientConfig.Timeout
	if raw := os.Getenv("CLASHBERRY_HTTP_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CLASHBERRY_HTTP_TIMEOUT %q: %w", raw, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("CLASHBERRY_HTTP_TIMEOUT must be positive, got %s", parsed)
		}
		timeout = parsed
	}

	interval := DefaultUpdateInterval
	if raw := os.Getenv("CLASHBERRY_UPDATE_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CLASHBERRY_UPDATE_INTERVAL %q: %w", raw, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("CLASHBERRY_UPDATE_INTERVAL must be positive, got %s", parsed)
		}
		interval = parsed
	}

	return &Config{
		APIBaseURL:     baseURL,
		HTTPTimeout:    timeout,
		ClanTags:       splitClanTags(os.Getenv("CLASHBERRY_CLAN_TAGS")),
		UpdateInterval: interval,
	}, nil
}

func splitClanTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
