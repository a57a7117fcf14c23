package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"feeds.xdoubleu.com/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

func TestEventsHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/events?days=3650",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(t, "application/json", rs.Header.Get("Content-Type"))
	assert.Equal(t,
		"public, max-age=600, stale-while-revalidate=86400",
		rs.Header.Get("Cache-Control"),
	)

	var data dtos.EventsResponseDto
	require.NoError(t, json.Unmarshal([]byte(readBody(t, rs)), &data))

	// past event dropped, remainder ascending by start
	assert.Equal(t, 3, data.Count)
	require.Len(t, data.Events, 3)
	assert.Equal(t, "Season opening", data.Events[0].Summary)
	assert.Equal(t, "Away tournament", data.Events[1].Summary)
	assert.Equal(t, "Match day", data.Events[2].Summary)

	assert.True(t, data.Events[0].AllDay)
	assert.False(t, data.Events[2].AllDay)
	assert.Equal(t, "club", data.Events[0].Calendar)
	assert.Equal(t, "Clubhouse", data.Events[0].Location)
	assert.True(t, data.UpdatedAt.Time().Equal(testNow))
}

func TestEventsHandlerDaysWindow(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/events?days=5",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var data dtos.EventsResponseDto
	require.NoError(t, json.Unmarshal([]byte(readBody(t, rs)), &data))

	// horizon at now+5d keeps only the event on the current day
	assert.Equal(t, 1, data.Count)
	require.Len(t, data.Events, 1)
	assert.Equal(t, "evt-opening", data.Events[0].UID)
}

func TestEventsHandlerLimit(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/events?days=3650&limit=1",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var data dtos.EventsResponseDto
	require.NoError(t, json.Unmarshal([]byte(readBody(t, rs)), &data))

	assert.Equal(t, 1, data.Count)
	require.Len(t, data.Events, 1)
	assert.Equal(t, "evt-opening", data.Events[0].UID)
}

func TestEventsRawHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/events/raw",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(t, "text/calendar", rs.Header.Get("Content-Type"))
	assert.Equal(t, testICS, readBody(t, rs))
}

func TestEventsHandlerMissingConfig(t *testing.T) {
	cfg := newTestConfig()
	cfg.ICSUrl = ""
	app, client := newTestApp(cfg)

	tReq := test.CreateRequestTester(app.Routes(), http.MethodGet, "/api/events")

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)

	var data dtos.ErrorDto
	require.NoError(t, json.Unmarshal([]byte(readBody(t, rs)), &data))
	assert.Equal(t, "Missing ICS_URL env", data.Error)

	// configuration errors never reach upstream
	assert.Equal(t, 0, client.Calls())
}
