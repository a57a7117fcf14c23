package dtos

import (
	"net/url"
	"strconv"
)

// Query-parameter bounds. Missing or non-numeric values take the
// documented default, everything else is clamped into range.
const (
	DefaultDays = 365
	MinDays     = 1
	MaxDays     = 3650

	// LimitAll means no result limit was requested.
	LimitAll = 0
	MinLimit = 1
	MaxLimit = 500
)

type EventsFilterDto struct {
	Days  int
	Limit int
}

type NewsFilterDto struct {
	Limit int
}

func NewEventsFilter(query url.Values) EventsFilterDto {
	return EventsFilterDto{
		Days:  clampParam(query.Get("days"), DefaultDays, MinDays, MaxDays),
		Limit: limitParam(query.Get("limit")),
	}
}

func NewNewsFilter(query url.Values) NewsFilterDto {
	return NewsFilterDto{
		Limit: limitParam(query.Get("limit")),
	}
}

func limitParam(value string) int {
	return clampParam(value, LimitAll, MinLimit, MaxLimit)
}

func clampParam(value string, fallback int, minValue int, maxValue int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	if parsed < minValue {
		return minValue
	}
	if parsed > maxValue {
		return maxValue
	}

	return parsed
}
