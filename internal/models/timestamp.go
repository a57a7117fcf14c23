package models

import (
	"fmt"
	"strconv"
	"time"
)

// TimestampFormat is the wire format for instants: ISO-8601 in UTC
// with millisecond precision and zero-padded fields.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Timestamp is a time.Time that marshals as an absolute UTC instant.
type Timestamp time.Time

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(
		fmt.Sprintf("%q", time.Time(t).UTC().Format(TimestampFormat)),
	), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	value, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	parsed, err := time.Parse(TimestampFormat, value)
	if err != nil {
		return err
	}

	*t = Timestamp(parsed)
	return nil
}
