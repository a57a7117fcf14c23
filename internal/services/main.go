package services

import (
	"log/slog"
	"time"

	"feeds.xdoubleu.com/internal/config"
	"feeds.xdoubleu.com/pkg/feedclient"
)

type Services struct {
	Calendar *CalendarService
	News     *NewsService
}

// New wires the feed services. now and loc are the ambient clock and
// local zone: tests pin them, main passes time.Now and time.Local.
func New(
	logger *slog.Logger,
	cfg config.Config,
	client feedclient.Client,
	now func() time.Time,
	loc *time.Location,
) *Services {
	return &Services{
		Calendar: &CalendarService{
			logger:   logger,
			client:   client,
			url:      cfg.ICSUrl,
			calendar: cfg.CalendarLabel,
			now:      now,
			loc:      loc,
		},
		News: &NewsService{
			logger: logger,
			client: client,
			url:    cfg.RSSUrl,
			now:    now,
		},
	}
}
