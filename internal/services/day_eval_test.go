package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/vital/internal/models"
)

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func makeMeal(day string, calories float64) models.Meal {
	return models.Meal{Date: mustParseDay(day), Calories: calories}
}

func makeSleep(start, end time.Time) models.SleepSession {
	return models.SleepSession{StartAt: start, EndAt: end}
}

func makeTimedWorkout(start, end time.Time) models.Workout {
	return models.Workout{StartAt: &start, EndAt: &end, Date: start}
}

func at(day string, hour, minute int) time.Time {
	base := mustParseDay(day)
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, time.UTC)
}

func TestEvaluateDayNutrition(t *testing.T) {
	tests := []struct {
		name       string
		meals      []models.Meal
		goal       int
		wantIntake int
		wantDelta  int
		wantStatus string
		wantOK     bool
	}{
		{
			name:       "under goal",
			meals:      []models.Meal{makeMeal("2026-03-02", 900), makeMeal("2026-03-02", 950)},
			goal:       2000,
			wantIntake: 1850,
			wantDelta:  -150,
			wantStatus: CalorieStatusUnder,
			wantOK:     true,
		},
		{
			name:       "over goal",
			meals:      []models.Meal{makeMeal("2026-03-02", 2300)},
			goal:       2000,
			wantIntake: 2300,
			wantDelta:  300,
			wantStatus: CalorieStatusOver,
			wantOK:     false,
		},
		{
			name:       "exact goal is its own status",
			meals:      []models.Meal{makeMeal("2026-03-02", 2000)},
			goal:       2000,
			wantIntake: 2000,
			wantDelta:  0,
			wantStatus: CalorieStatusGoal,
			wantOK:     true,
		},
		{
			name:       "negative entries do not subtract",
			meals:      []models.Meal{makeMeal("2026-03-02", -400), makeMeal("2026-03-02", 500)},
			goal:       2000,
			wantIntake: 500,
			wantDelta:  -1500,
			wantStatus: CalorieStatusUnder,
			wantOK:     true,
		},
		{
			name:       "fractional calories round to integer",
			meals:      []models.Meal{makeMeal("2026-03-02", 100.4), makeMeal("2026-03-02", 100.2)},
			goal:       2000,
			wantIntake: 201,
			wantDelta:  -1799,
			wantStatus: CalorieStatusUnder,
			wantOK:     true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := EvaluateDay(DailyInputs{
				Date:    mustParseDay("2026-03-02"),
				Targets: Targets{CalorieGoal: testCase.goal},
				Meals:   testCase.meals,
			})
			if result.CalorieIntake != testCase.wantIntake {
				t.Fatalf("expected intake %d, got %d", testCase.wantIntake, result.CalorieIntake)
			}
			if result.CalorieDelta != testCase.wantDelta {
				t.Fatalf("expected delta %d, got %d", testCase.wantDelta, result.CalorieDelta)
			}
			if result.CalorieStatus != testCase.wantStatus {
				t.Fatalf("expected status %s, got %s", testCase.wantStatus, result.CalorieStatus)
			}
			if result.CalorieOK != testCase.wantOK {
				t.Fatalf("expected calorie ok %v, got %v", testCase.wantOK, result.CalorieOK)
			}
		})
	}
}

func TestEvaluateDaySleepAttributionByWakeDay(t *testing.T) {
	// Falls asleep before midnight, wakes after: the whole session belongs
	// to the wake-up day.
	session := makeSleep(at("2026-03-01", 23, 50), at("2026-03-02", 0, 10))

	wakeDay := EvaluateDay(DailyInputs{
		Date:          mustParseDay("2026-03-02"),
		SleepSessions: []models.SleepSession{session},
	})
	if wakeDay.SleepMinutes != 20 {
		t.Fatalf("expected 20 minutes on the wake day, got %d", wakeDay.SleepMinutes)
	}

	startDay := EvaluateDay(DailyInputs{
		Date:          mustParseDay("2026-03-01"),
		SleepSessions: []models.SleepSession{session},
	})
	if startDay.SleepMinutes != 0 {
		t.Fatalf("expected 0 minutes on the start day, got %d", startDay.SleepMinutes)
	}
}

func TestEvaluateDaySleepThreshold(t *testing.T) {
	almostEnough := makeSleep(at("2026-03-02", 0, 1), at("2026-03-02", 6, 0))
	result := EvaluateDay(DailyInputs{
		Date:          mustParseDay("2026-03-02"),
		SleepSessions: []models.SleepSession{almostEnough},
	})
	if result.SleepMinutes != 359 || result.SleepOK {
		t.Fatalf("expected 359 minutes and sleep not ok, got %d (ok=%v)", result.SleepMinutes, result.SleepOK)
	}

	enough := makeSleep(at("2026-03-02", 0, 0), at("2026-03-02", 6, 0))
	result = EvaluateDay(DailyInputs{
		Date:          mustParseDay("2026-03-02"),
		SleepSessions: []models.SleepSession{enough},
	})
	if result.SleepMinutes != 360 || !result.SleepOK {
		t.Fatalf("expected 360 minutes and sleep ok, got %d (ok=%v)", result.SleepMinutes, result.SleepOK)
	}
}

func TestEvaluateDayInvertedSleepSessionCountsZero(t *testing.T) {
	inverted := makeSleep(at("2026-03-02", 8, 0), at("2026-03-02", 6, 0))
	result := EvaluateDay(DailyInputs{
		Date:          mustParseDay("2026-03-02"),
		SleepSessions: []models.SleepSession{inverted},
	})
	if result.SleepMinutes != 0 {
		t.Fatalf("expected inverted session to contribute 0, got %d", result.SleepMinutes)
	}
}

func TestEvaluateDaySleepAttributionHonorsLocation(t *testing.T) {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// Ends 23:30 UTC on March 1st, which is 02:30 March 2nd in Moscow.
	session := makeSleep(at("2026-03-01", 15, 0), at("2026-03-01", 23, 30))
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, location)

	result := EvaluateDay(DailyInputs{
		Date:          day,
		Location:      location,
		SleepSessions: []models.SleepSession{session},
	})
	if result.SleepMinutes != 510 {
		t.Fatalf("expected 510 minutes attributed in Moscow time, got %d", result.SleepMinutes)
	}
}

func TestEvaluateDayWorkoutClippingSplitsAcrossMidnight(t *testing.T) {
	// 23:00 to 01:00: each day is credited exactly its own half, and the two
	// evaluations together account for the full session.
	workout := makeTimedWorkout(at("2026-03-01", 23, 0), at("2026-03-02", 1, 0))

	firstDay := EvaluateDay(DailyInputs{
		Date:     mustParseDay("2026-03-01"),
		Workouts: []models.Workout{workout},
	})
	secondDay := EvaluateDay(DailyInputs{
		Date:     mustParseDay("2026-03-02"),
		Workouts: []models.Workout{workout},
	})

	if firstDay.ExerciseMinutes != 60 {
		t.Fatalf("expected 60 minutes on the first day, got %d", firstDay.ExerciseMinutes)
	}
	if secondDay.ExerciseMinutes != 60 {
		t.Fatalf("expected 60 minutes on the second day, got %d", secondDay.ExerciseMinutes)
	}
	if firstDay.ExerciseMinutes+secondDay.ExerciseMinutes != 120 {
		t.Fatalf("expected the split to preserve the true total")
	}
	if !firstDay.ExerciseOK || !secondDay.ExerciseOK {
		t.Fatalf("expected both days to count as exercised")
	}
}

func TestEvaluateDayWorkoutWindowTracksClippedBounds(t *testing.T) {
	early := makeTimedWorkout(at("2026-03-02", 7, 30), at("2026-03-02", 8, 35))
	late := makeTimedWorkout(at("2026-03-02", 18, 0), at("2026-03-02", 18, 45))

	result := EvaluateDay(DailyInputs{
		Date:     mustParseDay("2026-03-02"),
		Workouts: []models.Workout{late, early},
	})
	if result.ExerciseMinutes != 65+45 {
		t.Fatalf("expected 110 minutes, got %d", result.ExerciseMinutes)
	}
	if got := result.FirstWorkoutStart.Format("15:04"); got != "07:30" {
		t.Fatalf("expected first start 07:30, got %s", got)
	}
	if got := result.LastWorkoutEnd.Format("15:04"); got != "18:45" {
		t.Fatalf("expected last end 18:45, got %s", got)
	}
}

func TestEvaluateDayDurationOnlyWorkout(t *testing.T) {
	result := EvaluateDay(DailyInputs{
		Date:     mustParseDay("2026-03-02"),
		Workouts: []models.Workout{{Date: mustParseDay("2026-03-02"), DurationMinutes: 40}},
	})
	if result.ExerciseMinutes != 40 || !result.ExerciseOK {
		t.Fatalf("expected 40 minutes from an explicit duration, got %d (ok=%v)", result.ExerciseMinutes, result.ExerciseOK)
	}
	if !result.FirstWorkoutStart.IsZero() || !result.LastWorkoutEnd.IsZero() {
		t.Fatalf("expected no start/end window for duration-only workouts")
	}
}

func TestEvaluateDayScoreAndColor(t *testing.T) {
	goodSleep := []models.SleepSession{makeSleep(at("2026-03-02", 0, 0), at("2026-03-02", 7, 0))}
	goodMeals := []models.Meal{makeMeal("2026-03-02", 1800)}
	workout := []models.Workout{{Date: mustParseDay("2026-03-02"), DurationMinutes: 30}}

	tests := []struct {
		name      string
		inputs    DailyInputs
		wantScore int
		wantColor string
	}{
		{
			name: "all three green",
			inputs: DailyInputs{
				Date:          mustParseDay("2026-03-02"),
				Targets:       Targets{CalorieGoal: 2000},
				Meals:         goodMeals,
				SleepSessions: goodSleep,
				Workouts:      workout,
			},
			wantScore: 3,
			wantColor: ColorGreen,
		},
		{
			name: "two of three yellow",
			inputs: DailyInputs{
				Date:          mustParseDay("2026-03-02"),
				Targets:       Targets{CalorieGoal: 2000},
				Meals:         goodMeals,
				SleepSessions: goodSleep,
			},
			wantScore: 2,
			wantColor: ColorYellow,
		},
		{
			name: "one of three red",
			inputs: DailyInputs{
				Date:     mustParseDay("2026-03-02"),
				Targets:  Targets{CalorieGoal: 2000},
				Workouts: workout,
				Meals:    []models.Meal{makeMeal("2026-03-02", 2600)},
			},
			wantScore: 1,
			wantColor: ColorRed,
		},
		{
			name: "empty day scores one for calories",
			inputs: DailyInputs{
				Date:    mustParseDay("2026-03-02"),
				Targets: Targets{CalorieGoal: 2000},
			},
			wantScore: 1,
			wantColor: ColorRed,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := EvaluateDay(testCase.inputs)
			if result.Score != testCase.wantScore {
				t.Fatalf("expected score %d, got %d", testCase.wantScore, result.Score)
			}
			if result.Color != testCase.wantColor {
				t.Fatalf("expected color %s, got %s", testCase.wantColor, result.Color)
			}
			if result.Score < 0 || result.Score > 3 {
				t.Fatalf("score out of range: %d", result.Score)
			}
			if ColorForScore(result.Score) != result.Color {
				t.Fatalf("color must be a function of score")
			}
		})
	}
}

func TestColorForScoreMapping(t *testing.T) {
	expectations := map[int]string{0: ColorRed, 1: ColorRed, 2: ColorYellow, 3: ColorGreen}
	for score, want := range expectations {
		if got := ColorForScore(score); got != want {
			t.Fatalf("expected score %d to map to %s, got %s", score, want, got)
		}
	}
}

func TestEvaluateDayAppliesDefaultTargets(t *testing.T) {
	result := EvaluateDay(DailyInputs{
		Date:  mustParseDay("2026-03-02"),
		Meals: []models.Meal{makeMeal("2026-03-02", 2000)},
	})
	if result.CalorieGoal != models.DefaultCalorieGoal {
		t.Fatalf("expected default calorie goal, got %d", result.CalorieGoal)
	}
	if result.CalorieStatus != CalorieStatusGoal {
		t.Fatalf("expected GOAL against the default goal, got %s", result.CalorieStatus)
	}
}
