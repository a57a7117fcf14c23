package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"feeds.xdoubleu.com/internal/dtos"
	"feeds.xdoubleu.com/internal/ics"
	"feeds.xdoubleu.com/internal/models"
	"feeds.xdoubleu.com/pkg/feedclient"
)

type CalendarService struct {
	logger   *slog.Logger
	client   feedclient.Client
	url      string
	calendar string
	now      func() time.Time
	loc      *time.Location
}

// FetchRaw returns the upstream ICS document unchanged.
func (s *CalendarService) FetchRaw(ctx context.Context) (string, error) {
	s.logger.Debug("fetching upstream calendar")
	return s.client.Fetch(ctx, s.url, "text/calendar")
}

// Events fetches and parses the calendar, then applies the request
// window: events starting on or after the current UTC day and no
// later than now + days, ascending by start, capped at the limit.
func (s *CalendarService) Events(
	ctx context.Context,
	filter dtos.EventsFilterDto,
) (*dtos.EventsResponseDto, error) {
	raw, err := s.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dayStart := now.UTC().Truncate(24 * time.Hour) //nolint:mnd //one day
	horizon := now.Add(time.Duration(filter.Days) * 24 * time.Hour)

	events := []ics.Event{}
	for _, event := range ics.Parse(raw, s.calendar, now, s.loc) {
		start := event.Start.Time()
		if start.Before(dayStart) || start.After(horizon) {
			continue
		}
		events = append(events, event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Time().Before(events[j].Start.Time())
	})

	if filter.Limit != dtos.LimitAll && len(events) > filter.Limit {
		events = events[:filter.Limit]
	}

	return &dtos.EventsResponseDto{
		UpdatedAt: models.Timestamp(now),
		Count:     len(events),
		Events:    events,
	}, nil
}
