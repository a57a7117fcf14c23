package feedclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

const userAgent = "feeds.xdoubleu.com/1.0"

type client struct {
	logger *slog.Logger
	http   *http.Client
}

func New(logger *slog.Logger) Client {
	return client{
		logger: logger,
		http: &http.Client{
			//nolint:mnd //reasonable timeout for fetching external feeds
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch performs a single GET against the upstream feed. A non-2xx
// status is an error; there are no retries, one failed fetch yields
// one failed client response.
func (client client) Fetch(ctx context.Context, url string, accept string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)

	res, err := client.http.Do(req)
	if err != nil {
		client.logger.Error("upstream fetch failed", logging.ErrAttr(err), "url", url)
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("upstream returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
