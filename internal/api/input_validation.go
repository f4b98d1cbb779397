package api

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrDateRequired     = errors.New("date is required")
)

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrDateRequired
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}
	return parsed, nil
}

// parseTimestamp rejects rather than zeroes a bad timestamp: a silently
// zeroed sleep or workout interval would corrupt the day's score.
func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidTimestamp)
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}
	return parsed, nil
}

// parseOptionalTimestamp distinguishes "absent" (allowed, nil) from
// "present but malformed" (an error).
func parseOptionalTimestamp(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := parseTimestamp(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
