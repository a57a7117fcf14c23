package ics

import "time"

// The three DTSTART/DTEND encodings these feeds use. Anything else is
// treated as malformed and falls back to "now".
const (
	layoutDate     = "20060102"
	layoutUTC      = "20060102T150405Z"
	layoutFloating = "20060102T150405"
)

// normalizeDates converts raw DTSTART/DTEND values into absolute UTC
// instants.
//
//   - Bare dates are taken as UTC midnight of that calendar day and
//     mark the event all-day; a missing or non-date DTEND defaults to
//     start + 24h.
//   - Z-suffixed date-times are literal UTC.
//   - Floating date-times (no zone) are interpreted in loc and then
//     converted to UTC. This matches whatever zone the service runs
//     in, not any per-event venue zone.
//   - Malformed values fall back to now for both ends. Silent by
//     contract: a half-broken feed still renders.
//
// A DTEND in a different time-bearing encoding than DTSTART is
// normalized by its own encoding's rule.
func normalizeDates(
	start string,
	end string,
	now time.Time,
	loc *time.Location,
) (time.Time, time.Time, bool) {
	if t, err := time.Parse(layoutDate, start); err == nil {
		endTime := t.Add(24 * time.Hour) //nolint:mnd //one day
		if e, endErr := time.Parse(layoutDate, end); endErr == nil {
			endTime = e
		}
		return t, endTime, true
	}

	if t, err := time.Parse(layoutUTC, start); err == nil {
		return t, normalizeEnd(end, t, loc), false
	}

	if t, err := time.ParseInLocation(layoutFloating, start, loc); err == nil {
		startTime := t.UTC()
		return startTime, normalizeEnd(end, startTime, loc), false
	}

	return now, now, false
}

// normalizeEnd parses a DTEND for a time-bearing DTSTART, falling back
// to the start instant when absent or unparseable.
func normalizeEnd(end string, fallback time.Time, loc *time.Location) time.Time {
	if t, err := time.Parse(layoutUTC, end); err == nil {
		return t
	}

	if t, err := time.ParseInLocation(layoutFloating, end, loc); err == nil {
		return t.UTC()
	}

	return fallback
}
