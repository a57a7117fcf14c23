package ics_test

import (
	"encoding/json"
	"testing"
	"time"

	"feeds.xdoubleu.com/internal/ics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals //needed for tests

func parseOne(t *testing.T, doc string) ics.Event {
	t.Helper()

	events := ics.Parse(doc, "club", testNow, time.UTC)
	require.Len(t, events, 1)

	return events[0]
}

func TestLineUnfolding(t *testing.T) {
	doc := "BEGIN:VCALENDAR\r\n" +
		"BEGIN:VEVENT\r\n" +
		"SUMMARY:Annual general m\r\n eeting of the club\r\n" +
		"LOCATION:Main ha\r\n\tll\r\n" +
		"DTSTART:20250101\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	event := parseOne(t, doc)
	assert.Equal(t, "Annual general meeting of the club", event.Summary)
	assert.Equal(t, "Main hall", event.Location)
}

func TestBareDateIsAllDay(t *testing.T) {
	doc := "BEGIN:VEVENT\nDTSTART:20250101\nEND:VEVENT\n"

	event := parseOne(t, doc)
	assert.True(t, event.AllDay)

	start, err := json.Marshal(event.Start)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-01T00:00:00.000Z"`, string(start))

	end, err := json.Marshal(event.End)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-02T00:00:00.000Z"`, string(end))
}

func TestBareDateEnd(t *testing.T) {
	doc := "BEGIN:VEVENT\nDTSTART:20250101\nDTEND:20250105\nEND:VEVENT\n"

	event := parseOne(t, doc)
	assert.True(t, event.AllDay)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), event.End.Time())
}

func TestUTCDateTime(t *testing.T) {
	doc := "BEGIN:VEVENT\nDTSTART:20250615T180000Z\nEND:VEVENT\n"

	event := parseOne(t, doc)
	assert.False(t, event.AllDay)

	start, err := json.Marshal(event.Start)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-15T18:00:00.000Z"`, string(start))

	// missing DTEND falls back to the start instant
	assert.Equal(t, event.Start.Time(), event.End.Time())
}

func TestFloatingLocalDateTime(t *testing.T) {
	doc := "BEGIN:VEVENT\nDTSTART:20250615T100000\nEND:VEVENT\n"

	loc := time.FixedZone("UTC+2", 2*60*60)
	events := ics.Parse(doc, "club", testNow, loc)
	require.Len(t, events, 1)

	assert.Equal(t,
		time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC),
		events[0].Start.Time(),
	)
	assert.False(t, events[0].AllDay)
}

func TestMixedEndEncoding(t *testing.T) {
	doc := "BEGIN:VEVENT\n" +
		"DTSTART:20250615T180000Z\n" +
		"DTEND:20250615T210000\n" +
		"END:VEVENT\n"

	loc := time.FixedZone("UTC+2", 2*60*60)
	events := ics.Parse(doc, "club", testNow, loc)
	require.Len(t, events, 1)

	// the floating end keeps its own encoding's rule
	assert.Equal(t,
		time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC),
		events[0].End.Time(),
	)
}

func TestMalformedDatesFallBackToNow(t *testing.T) {
	doc := "BEGIN:VEVENT\nDTSTART:whenever\nSUMMARY:Mystery\nEND:VEVENT\n"

	event := parseOne(t, doc)
	assert.False(t, event.AllDay)
	assert.Equal(t, testNow, event.Start.Time())
	assert.Equal(t, testNow, event.End.Time())
}

func TestParameterSuffixStripped(t *testing.T) {
	doc := "BEGIN:VEVENT\n" +
		"DTSTART;VALUE=DATE:20250101\n" +
		"SUMMARY;LANGUAGE=nl:Nieuwjaarsreceptie\n" +
		"END:VEVENT\n"

	event := parseOne(t, doc)
	assert.True(t, event.AllDay)
	assert.Equal(t, "Nieuwjaarsreceptie", event.Summary)
}

func TestLaterFieldOverwritesEarlier(t *testing.T) {
	doc := "BEGIN:VEVENT\n" +
		"SUMMARY:First\n" +
		"SUMMARY:Second\n" +
		"DTSTART:20250101\n" +
		"END:VEVENT\n"

	event := parseOne(t, doc)
	assert.Equal(t, "Second", event.Summary)
}

func TestIgnoresOtherBlocksAndJunk(t *testing.T) {
	doc := "BEGIN:VCALENDAR\n" +
		"X-WR-CALNAME:Club calendar\n" +
		"BEGIN:VTODO\n" +
		"SUMMARY:Not an event\n" +
		"END:VTODO\n" +
		"BEGIN:VEVENT\n" +
		"no colon here\n" +
		"DTSTART:20250101\n" +
		"UID:evt-1\n" +
		"END:VEVENT\n" +
		"END:VCALENDAR\n"

	event := parseOne(t, doc)
	assert.Equal(t, "evt-1", event.UID)
	assert.Empty(t, event.Summary)
	assert.Empty(t, event.Location)
	assert.Empty(t, event.URL)
	assert.Equal(t, "club", event.Calendar)
}

func TestParseIsIdempotent(t *testing.T) {
	doc := "BEGIN:VEVENT\n" +
		"DTSTART:20250615T180000Z\n" +
		"DTEND:20250615T200000Z\n" +
		"SUMMARY:Match day\n" +
		"END:VEVENT\n"

	first := ics.Parse(doc, "club", testNow, time.UTC)
	second := ics.Parse(doc, "club", testNow, time.UTC)
	assert.Equal(t, first, second)
}
