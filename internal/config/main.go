//nolint:mnd //no magic number
package config

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/config"
	str2duration "github.com/xhit/go-str2duration/v2"
)

type Config struct {
	Env           string
	Port          int
	SentryDsn     string
	SampleRate    float64
	Release       string
	ICSUrl        string
	RSSUrl        string
	AllowedOrigin string
	CalendarLabel string
	CacheMaxAge   time.Duration
	CacheSWR      time.Duration
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.ICSUrl = parser.EnvStr("ICS_URL", "")
	cfg.RSSUrl = parser.EnvStr("RSS_URL", "")
	cfg.AllowedOrigin = parser.EnvStr("ALLOWED_ORIGIN", "*")
	cfg.CalendarLabel = parser.EnvStr("CALENDAR_LABEL", "club")

	cfg.CacheMaxAge = envDuration(
		logger,
		parser.EnvStr("CACHE_MAX_AGE", "10m"),
		10*time.Minute,
	)
	cfg.CacheSWR = envDuration(
		logger,
		parser.EnvStr("CACHE_STALE_WHILE_REVALIDATE", "1d"),
		24*time.Hour,
	)

	return cfg
}

// envDuration parses duration strings with day suffixes ("10m", "1d").
// An unparseable value falls back to its default instead of failing
// startup.
func envDuration(
	logger *slog.Logger,
	value string,
	fallback time.Duration,
) time.Duration {
	duration, err := str2duration.ParseDuration(value)
	if err != nil {
		logger.Warn("invalid duration, using fallback",
			"value", value, "fallback", fallback.String())
		return fallback
	}

	return duration
}
