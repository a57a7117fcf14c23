package main

import (
	"context"
	"encoding/json"
	"net/http"

	"feeds.xdoubleu.com/internal/dtos"
	"feeds.xdoubleu.com/internal/models"
)

func (app *Application) newsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/news", app.newsHandler)
	mux.HandleFunc("GET /api/news/raw", app.newsRawHandler)
}

func (app *Application) newsHandler(w http.ResponseWriter, r *http.Request) {
	if app.config.RSSUrl == "" {
		errorJSON(w, http.StatusBadRequest, "Missing RSS_URL env")
		return
	}

	filter := dtos.NewNewsFilter(r.URL.Query())

	app.serveFeed(w, r, func(ctx context.Context) (*models.CachedResponse, error) {
		data, err := app.services.News.News(ctx, filter)
		if err != nil {
			return nil, err
		}

		body, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}

		return models.NewCachedResponse(
			"application/json",
			app.cacheControl(),
			body,
		), nil
	})
}

func (app *Application) newsRawHandler(w http.ResponseWriter, r *http.Request) {
	if app.config.RSSUrl == "" {
		errorJSON(w, http.StatusBadRequest, "Missing RSS_URL env")
		return
	}

	app.serveFeed(w, r, func(ctx context.Context) (*models.CachedResponse, error) {
		raw, err := app.services.News.FetchRaw(ctx)
		if err != nil {
			return nil, err
		}

		return models.NewCachedResponse(
			"application/rss+xml",
			app.cacheControl(),
			[]byte(raw),
		), nil
	})
}
