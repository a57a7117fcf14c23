package ics

import (
	"strings"
	"time"

	"feeds.xdoubleu.com/internal/models"
)

// Event is the normalized representation of a single VEVENT.
type Event struct {
	Start    models.Timestamp `json:"start"`
	End      models.Timestamp `json:"end"`
	AllDay   bool             `json:"isAllDay"`
	Summary  string           `json:"summary"`
	Location string           `json:"location"`
	URL      string           `json:"url"`
	UID      string           `json:"uid"`
	Calendar string           `json:"calendar"`
}

// Parse extracts all VEVENT blocks from a raw ICS document.
//
// Lines folded per RFC 5545 (break followed by a single space or tab)
// are joined back together first. Inside a block each "NAME[;params]:VALUE"
// line is kept under its upper-cased name with parameters stripped;
// a repeated name overwrites the earlier value. Other component types
// and colon-less lines are ignored.
//
// Parsing never fails on malformed fields: missing text properties
// become empty strings and unparseable dates fall back to now.
// calendar is stamped onto every event as its source label, loc
// drives the floating-local date-time interpretation.
func Parse(data string, calendar string, now time.Time, loc *time.Location) []Event {
	events := []Event{}

	var fields map[string]string
	for _, line := range logicalLines(data) {
		switch {
		case line == "BEGIN:VEVENT":
			fields = map[string]string{}
		case line == "END:VEVENT":
			if fields != nil {
				events = append(events, newEvent(fields, calendar, now, loc))
				fields = nil
			}
		case fields != nil:
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}

			name, _, _ = strings.Cut(name, ";")
			fields[strings.ToUpper(name)] = value
		}
	}

	return events
}

// logicalLines unfolds RFC 5545 line-folding and splits the document
// into logical lines. Continuations reconstruct byte-for-byte.
func logicalLines(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	data = strings.ReplaceAll(data, "\n ", "")
	data = strings.ReplaceAll(data, "\n\t", "")

	return strings.Split(data, "\n")
}

func newEvent(
	fields map[string]string,
	calendar string,
	now time.Time,
	loc *time.Location,
) Event {
	start, end, allDay := normalizeDates(fields["DTSTART"], fields["DTEND"], now, loc)

	return Event{
		Start:    models.Timestamp(start),
		End:      models.Timestamp(end),
		AllDay:   allDay,
		Summary:  fields["SUMMARY"],
		Location: fields["LOCATION"],
		URL:      fields["URL"],
		UID:      fields["UID"],
		Calendar: calendar,
	}
}
