package main

import (
	"context"
	"encoding/json"
	"net/http"

	"feeds.xdoubleu.com/internal/dtos"
	"feeds.xdoubleu.com/internal/models"
)

func (app *Application) eventsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/events", app.eventsHandler)
	mux.HandleFunc("GET /api/events/raw", app.eventsRawHandler)
}

func (app *Application) eventsHandler(w http.ResponseWriter, r *http.Request) {
	if app.config.ICSUrl == "" {
		errorJSON(w, http.StatusBadRequest, "Missing ICS_URL env")
		return
	}

	filter := dtos.NewEventsFilter(r.URL.Query())

	app.serveFeed(w, r, func(ctx context.Context) (*models.CachedResponse, error) {
		data, err := app.services.Calendar.Events(ctx, filter)
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

func (app *Application) eventsRawHandler(w http.ResponseWriter, r *http.Request) {
	if app.config.ICSUrl == "" {
		errorJSON(w, http.StatusBadRequest, "Missing ICS_URL env")
		return
	}

	app.serveFeed(w, r, func(ctx context.Context) (*models.CachedResponse, error) {
		raw, err := app.services.Calendar.FetchRaw(ctx)
		if err != nil {
			return nil, err
		}

		return models.NewCachedResponse(
			"text/calendar",
			app.cacheControl(),
			[]byte(raw),
		), nil
	})
}
