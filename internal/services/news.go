package services

import (
	"context"
	"log/slog"
	"time"

	"feeds.xdoubleu.com/internal/dtos"
	"feeds.xdoubleu.com/internal/models"
	"feeds.xdoubleu.com/internal/rss"
	"feeds.xdoubleu.com/pkg/feedclient"
)

type NewsService struct {
	logger *slog.Logger
	client feedclient.Client
	url    string
	now    func() time.Time
}

// FetchRaw returns the upstream RSS document unchanged.
func (s *NewsService) FetchRaw(ctx context.Context) (string, error) {
	s.logger.Debug("fetching upstream news feed")
	return s.client.Fetch(ctx, s.url, "application/rss+xml")
}

// News fetches and parses the feed. Items come back from the parser
// already sorted by publish date descending; only the limit applies.
func (s *NewsService) News(
	ctx context.Context,
	filter dtos.NewsFilterDto,
) (*dtos.NewsResponseDto, error) {
	raw, err := s.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}

	items := rss.Parse(raw)
	if filter.Limit != dtos.LimitAll && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}

	return &dtos.NewsResponseDto{
		UpdatedAt: models.Timestamp(s.now()),
		Count:     len(items),
		Items:     items,
	}, nil
}
