package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"feeds.xdoubleu.com/internal/dtos"
	"feeds.xdoubleu.com/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

// cacheKey is the full request identity: method plus URL including
// the query string.
func cacheKey(r *http.Request) string {
	return r.Method + " " + r.URL.RequestURI()
}

func (app *Application) cacheControl() string {
	return fmt.Sprintf(
		"public, max-age=%d, stale-while-revalidate=%d",
		int(app.config.CacheMaxAge.Seconds()),
		int(app.config.CacheSWR.Seconds()),
	)
}

// serveFeed runs the shared skeleton of the four feed operations:
// edge-cache lookup, upstream fetch + transform on a miss, and
// fire-and-forget cache population. The cache write never delays the
// response and its failure never reaches the client; error responses
// are not cached.
func (app *Application) serveFeed(
	w http.ResponseWriter,
	r *http.Request,
	build func(ctx context.Context) (*models.CachedResponse, error),
) {
	key := cacheKey(r)

	if cached, ok := app.cache.Get(key); ok {
		writeResponse(w, cached)
		return
	}

	response, err := build(r.Context())
	if err != nil {
		app.logger.Error("feed request failed", logging.ErrAttr(err), "key", key)
		http.Error(
			w,
			fmt.Sprintf("Failed to fetch upstream feed: %v", err),
			http.StatusBadGateway,
		)
		return
	}

	writeResponse(w, response)

	app.cacheWrites.Add(1)
	go func() {
		defer app.cacheWrites.Done()
		app.cache.Set(key, response)
	}()
}

func writeResponse(w http.ResponseWriter, response *models.CachedResponse) {
	for name, values := range response.Header {
		for _, value := range values {
			w.Header().Add(name, value)
		}
	}

	w.WriteHeader(response.Status)
	_, _ = w.Write(response.Body)
}

func errorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dtos.ErrorDto{Error: message})
}
