package services

import (
	"time"

	"github.com/terraincognita07/vital/internal/models"
)

type NormalizedDay struct {
	Date  time.Time `json:"date"`
	Color string    `json:"color"`
}

type StreakResult struct {
	Count int    `json:"count"`
	Color string `json:"color"`
}

// SummaryHasData reports whether a stored day has any tracked activity:
// a calories/target pair, positive sleep, or a workout flag. Total over any
// record; a partially-null row simply reads as "no data".
func SummaryHasData(record models.DailySummary) bool {
	if record.Calories != nil && record.CalorieTarget != nil {
		return true
	}
	if record.SleepHours != nil && *record.SleepHours > 0 {
		return true
	}
	return record.DidWorkout
}

// EffectiveColor overrides the stored color with red for days without data,
// so a logging gap breaks a streak even when a stale or default color sits
// in the row. An absent stored color also reads as red.
func EffectiveColor(record models.DailySummary) string {
	if !SummaryHasData(record) {
		return ColorRed
	}
	switch record.Color {
	case ColorGreen, ColorYellow:
		return record.Color
	default:
		return ColorRed
	}
}

func NormalizeSummaries(records []models.DailySummary) []NormalizedDay {
	days := make([]NormalizedDay, 0, len(records))
	for _, record := range records {
		days = append(days, NormalizedDay{
			Date:  record.Date,
			Color: EffectiveColor(record),
		})
	}
	return days
}

// CalculateStreak is the literal walk over a most-recent-first normalized
// sequence: consume days until the first red, count what was consumed, and
// report the color of the most recent consumed day. An empty sequence or a
// leading red day yields {0, red}; the never-zero presentation rule lives in
// DisplayStreak, not here.
func CalculateStreak(days []NormalizedDay) StreakResult {
	result := StreakResult{Color: ColorRed}
	for _, day := range days {
		if day.Color == ColorRed {
			break
		}
		if result.Count == 0 {
			result.Color = day.Color
		}
		result.Count++
	}
	return result
}

// DisplayStreak clamps a dead streak to "today is a red day" for UI surfaces
// that never show zero. Kept separate from the walk so the two conventions
// cannot be conflated.
func DisplayStreak(result StreakResult) StreakResult {
	if result.Count == 0 {
		return StreakResult{Count: 1, Color: ColorRed}
	}
	return result
}
