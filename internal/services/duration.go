package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var ErrInvalidDuration = errors.New("invalid duration literal")

var durationLiteralPattern = regexp.MustCompile(`^(\d+)h([0-5]\d)m$`)

// FormatMinutes renders a minute total as "<h>h<mm>m" with zero-padded
// minutes, e.g. 425 -> "7h05m". Negative totals render as "0h00m".
func FormatMinutes(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%dh%02dm", totalMinutes/60, totalMinutes%60)
}

// ParseMinutes is the inverse of FormatMinutes for valid input.
func ParseMinutes(raw string) (int, error) {
	matches := durationLiteralPattern.FindStringSubmatch(raw)
	if len(matches) != 3 {
		return 0, ErrInvalidDuration
	}
	hours, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, ErrInvalidDuration
	}
	minutes, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, ErrInvalidDuration
	}
	return hours*60 + minutes, nil
}
