package services

import "fmt"

// Chips are the short per-metric summary strings the dashboard shows. They
// are pure formatters over a DailyResult so presentation can change without
// touching scoring.
type DayChips struct {
	Calories string `json:"calories"`
	Sleep    string `json:"sleep"`
	Exercise string `json:"exercise"`
}

func BuildDayChips(result DailyResult) DayChips {
	return DayChips{
		Calories: CaloriesChip(result),
		Sleep:    SleepChip(result),
		Exercise: ExerciseChip(result),
	}
}

// CaloriesChip renders "<intake>/<goal> <STATUS> <signed delta>", with a bare
// "0" for an exact goal hit.
func CaloriesChip(result DailyResult) string {
	deltaText := "0"
	if result.CalorieDelta != 0 {
		deltaText = fmt.Sprintf("%+d", result.CalorieDelta)
	}
	return fmt.Sprintf("%d/%d %s %s", result.CalorieIntake, result.CalorieGoal, result.CalorieStatus, deltaText)
}

func SleepChip(result DailyResult) string {
	return fmt.Sprintf("%s %s", FormatMinutes(result.SleepMinutes), okMark(result.SleepOK))
}

// ExerciseChip shows the credited duration and, when the workouts were timed,
// the clipped start–end window.
func ExerciseChip(result DailyResult) string {
	if !result.ExerciseOK {
		return "❌"
	}
	chip := fmt.Sprintf("✅ %s", FormatMinutes(result.ExerciseMinutes))
	if !result.FirstWorkoutStart.IsZero() && !result.LastWorkoutEnd.IsZero() {
		chip += fmt.Sprintf(" (%s–%s)",
			result.FirstWorkoutStart.Format("15:04"),
			result.LastWorkoutEnd.Format("15:04"))
	}
	return chip
}

func okMark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
