package services

import (
	"testing"

	"github.com/terraincognita07/vital/internal/models"
)

func TestCaloriesChipFormats(t *testing.T) {
	tests := []struct {
		name   string
		result DailyResult
		want   string
	}{
		{
			name:   "under goal shows negative delta",
			result: DailyResult{CalorieIntake: 1850, CalorieGoal: 2000, CalorieDelta: -150, CalorieStatus: CalorieStatusUnder},
			want:   "1850/2000 UNDER -150",
		},
		{
			name:   "over goal shows plus sign",
			result: DailyResult{CalorieIntake: 2300, CalorieGoal: 2000, CalorieDelta: 300, CalorieStatus: CalorieStatusOver},
			want:   "2300/2000 OVER +300",
		},
		{
			name:   "exact goal shows bare zero",
			result: DailyResult{CalorieIntake: 2000, CalorieGoal: 2000, CalorieDelta: 0, CalorieStatus: CalorieStatusGoal},
			want:   "2000/2000 GOAL 0",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := CaloriesChip(testCase.result); got != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestSleepChipFormats(t *testing.T) {
	if got := SleepChip(DailyResult{SleepMinutes: 425, SleepOK: true}); got != "7h05m ✅" {
		t.Fatalf("unexpected sleep chip: %q", got)
	}
	if got := SleepChip(DailyResult{SleepMinutes: 300, SleepOK: false}); got != "5h00m ❌" {
		t.Fatalf("unexpected sleep chip: %q", got)
	}
}

func TestExerciseChipFormats(t *testing.T) {
	rested := DailyResult{ExerciseOK: false}
	if got := ExerciseChip(rested); got != "❌" {
		t.Fatalf("unexpected rest-day chip: %q", got)
	}

	timed := DailyResult{
		ExerciseOK:        true,
		ExerciseMinutes:   65,
		FirstWorkoutStart: at("2026-03-02", 7, 30),
		LastWorkoutEnd:    at("2026-03-02", 8, 35),
	}
	if got := ExerciseChip(timed); got != "✅ 1h05m (07:30–08:35)" {
		t.Fatalf("unexpected timed chip: %q", got)
	}

	durationOnly := DailyResult{ExerciseOK: true, ExerciseMinutes: 40}
	if got := ExerciseChip(durationOnly); got != "✅ 0h40m" {
		t.Fatalf("unexpected duration-only chip: %q", got)
	}
}

func TestBuildDayChipsMatchesEvaluation(t *testing.T) {
	result := EvaluateDay(DailyInputs{
		Date:    mustParseDay("2026-03-02"),
		Targets: Targets{CalorieGoal: 2000},
		Meals:   []models.Meal{makeMeal("2026-03-02", 2000)},
	})
	if result.Chips.Calories != "2000/2000 GOAL 0" {
		t.Fatalf("unexpected calories chip: %q", result.Chips.Calories)
	}
	if result.Chips.Sleep != "0h00m ❌" {
		t.Fatalf("unexpected sleep chip: %q", result.Chips.Sleep)
	}
	if result.Chips.Exercise != "❌" {
		t.Fatalf("unexpected exercise chip: %q", result.Chips.Exercise)
	}
}
