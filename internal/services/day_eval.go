package services

import (
	"math"
	"time"

	"github.com/terraincognita07/vital/internal/models"
)

const (
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorRed    = "red"
)

const (
	CalorieStatusUnder = "UNDER"
	CalorieStatusOver  = "OVER"
	CalorieStatusGoal  = "GOAL"
)

// Targets carries the per-user goals the evaluator scores against. Zero
// fields fall back to the model defaults so a half-configured profile still
// evaluates.
type Targets struct {
	CalorieGoal      int
	SleepGoalMinutes int
}

func (targets Targets) withDefaults() Targets {
	if targets.CalorieGoal <= 0 {
		targets.CalorieGoal = models.DefaultCalorieGoal
	}
	if targets.SleepGoalMinutes <= 0 {
		targets.SleepGoalMinutes = models.DefaultSleepGoalMinutes
	}
	return targets
}

type DailyInputs struct {
	Date          time.Time
	Location      *time.Location
	Targets       Targets
	Meals         []models.Meal
	SleepSessions []models.SleepSession
	Workouts      []models.Workout
}

type DailyResult struct {
	Date              time.Time `json:"date"`
	SleepMinutes      int       `json:"sleep_minutes"`
	SleepOK           bool      `json:"sleep_ok"`
	CalorieIntake     int       `json:"calorie_intake"`
	CalorieGoal       int       `json:"calorie_goal"`
	CalorieDelta      int       `json:"calorie_delta"`
	CalorieStatus     string    `json:"calorie_status"`
	CalorieOK         bool      `json:"calorie_ok"`
	ExerciseOK        bool      `json:"exercise_ok"`
	ExerciseMinutes   int       `json:"exercise_minutes"`
	FirstWorkoutStart time.Time `json:"first_workout_start"`
	LastWorkoutEnd    time.Time `json:"last_workout_end"`
	Score             int       `json:"score"`
	Color             string    `json:"color"`
	Chips             DayChips  `json:"chips"`
}

// EvaluateDay turns one day's raw logs into a scored result. Deterministic,
// no I/O; missing optional fields count as zero rather than failing.
func EvaluateDay(inputs DailyInputs) DailyResult {
	location := inputs.Location
	if location == nil {
		location = time.UTC
	}
	targets := inputs.Targets.withDefaults()
	dayStart, dayEnd := DayRange(inputs.Date, location)

	result := DailyResult{
		Date:        dayStart,
		CalorieGoal: targets.CalorieGoal,
	}

	result.CalorieIntake = sumMealCalories(inputs.Meals)
	result.CalorieDelta = result.CalorieIntake - targets.CalorieGoal
	result.CalorieStatus = calorieStatus(result.CalorieDelta)
	result.CalorieOK = result.CalorieIntake <= targets.CalorieGoal

	result.SleepMinutes = sumSleepMinutes(inputs.SleepSessions, dayStart, location)
	result.SleepOK = result.SleepMinutes >= targets.SleepGoalMinutes

	result.ExerciseMinutes, result.FirstWorkoutStart, result.LastWorkoutEnd =
		sumWorkoutMinutes(inputs.Workouts, dayStart, dayEnd)
	result.ExerciseOK = result.ExerciseMinutes > 0

	result.Score = scoreFromFlags(result.SleepOK, result.CalorieOK, result.ExerciseOK)
	result.Color = ColorForScore(result.Score)
	result.Chips = BuildDayChips(result)
	return result
}

// ColorForScore is the only permitted score-to-color mapping.
func ColorForScore(score int) string {
	switch {
	case score >= 3:
		return ColorGreen
	case score == 2:
		return ColorYellow
	default:
		return ColorRed
	}
}

func scoreFromFlags(flags ...bool) int {
	score := 0
	for _, flag := range flags {
		if flag {
			score++
		}
	}
	return score
}

func calorieStatus(delta int) string {
	switch {
	case delta < 0:
		return CalorieStatusUnder
	case delta > 0:
		return CalorieStatusOver
	default:
		return CalorieStatusGoal
	}
}

func sumMealCalories(meals []models.Meal) int {
	var total float64
	for _, meal := range meals {
		if meal.Calories > 0 {
			total += meal.Calories
		}
	}
	return int(math.Round(total))
}

// sumSleepMinutes counts only sessions whose end falls on the target day in
// the viewer's location: a night's sleep belongs to the wake-up day.
// Inverted sessions contribute zero.
func sumSleepMinutes(sessions []models.SleepSession, dayStart time.Time, location *time.Location) int {
	total := 0
	for _, session := range sessions {
		if !SameDay(DateAtLocation(session.EndAt, location), dayStart) {
			continue
		}
		total += minutesBetween(session.StartAt, session.EndAt)
	}
	return total
}

// sumWorkoutMinutes clips timed workouts to the day's bounds so a session
// crossing midnight is never credited twice; duration-only entries pass
// through unchanged.
func sumWorkoutMinutes(workouts []models.Workout, dayStart, dayEnd time.Time) (int, time.Time, time.Time) {
	total := 0
	var firstStart, lastEnd time.Time
	for _, workout := range workouts {
		if !workout.IsTimed() {
			if workout.DurationMinutes > 0 {
				total += workout.DurationMinutes
			}
			continue
		}

		clippedStart, clippedEnd, ok := ClipToRange(*workout.StartAt, *workout.EndAt, dayStart, dayEnd)
		if !ok {
			continue
		}
		total += minutesBetween(clippedStart, clippedEnd)
		if firstStart.IsZero() || clippedStart.Before(firstStart) {
			firstStart = clippedStart
		}
		if lastEnd.IsZero() || clippedEnd.After(lastEnd) {
			lastEnd = clippedEnd
		}
	}
	return total, firstStart, lastEnd
}
