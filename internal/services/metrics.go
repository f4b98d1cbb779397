package services

import (
	"errors"
	"math"
)

const (
	PoundsPerKilogram     = 2.20462
	CaloriesPerPound      = 3500
	DefaultTrendDays      = 7
	DefaultTrendSmoothing = 0.25
)

var ErrPlanDurationZero = errors.New("deficit plan needs at least one week")

// activityFactors is the single source of truth for valid activity levels;
// the API validates against it too.
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

func ActivityFactor(level string) (float64, bool) {
	factor, ok := activityFactors[level]
	return factor, ok
}

// BMR estimates resting energy expenditure via Mifflin-St Jeor.
// Unknown sex falls back to the male constant.
func BMR(weightKG, heightCM float64, age int, sex string) float64 {
	if weightKG <= 0 || heightCM <= 0 || age <= 0 {
		return 0
	}
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == "female" {
		return base - 161
	}
	return base + 5
}

func TDEE(bmr, activityFactor float64) int {
	if bmr <= 0 || activityFactor <= 0 {
		return 0
	}
	return int(math.Round(bmr * activityFactor))
}

// AdaptiveTDEE back-calculates expenditure from observed intake and the
// weight-trend change over the window: 1 lb of body mass ~ 3500 kcal.
// trendDeltaKG is trend-at-window-start minus trend-at-window-end, so a
// positive delta (weight lost) raises the estimate above observed intake.
func AdaptiveTDEE(averageIntake, trendDeltaKG float64, days int) int {
	if days <= 0 {
		days = DefaultTrendDays
	}
	deltaLB := trendDeltaKG * PoundsPerKilogram
	return int(math.Round(averageIntake + CaloriesPerPound*(deltaLB/float64(days))))
}

// TrendWeight advances the exponentially weighted trend by one reading.
// Callers persist the returned value and feed it back on the next call; the
// engine keeps no state of its own.
func TrendWeight(previousTrend, newWeight float64) float64 {
	return TrendWeightWithSmoothing(previousTrend, newWeight, DefaultTrendSmoothing)
}

func TrendWeightWithSmoothing(previousTrend, newWeight, smoothing float64) float64 {
	if smoothing <= 0 || smoothing > 1 {
		smoothing = DefaultTrendSmoothing
	}
	return smoothing*newWeight + (1-smoothing)*previousTrend
}

// MovingAverage is the seed for a trend when no previous trend exists.
// Empty input yields 0, not an error.
func MovingAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, value := range values {
		total += value
	}
	return total / float64(len(values))
}

// OneRepMax estimates maximal strength via Epley, rounded to one decimal.
func OneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	return math.Round(weight*(1+float64(reps)/30)*10) / 10
}

const (
	ActionIncrease = "increase"
	ActionMaintain = "maintain"
	// ActionReduce is reserved for a failed-set rule that is not part of the
	// current RIR table; no path emits it yet.
	ActionReduce = "reduce"
)

// SuggestProgression turns the reps-in-reserve of the last set into the next
// session's working weight. Easy sets (RIR <= 2) load up by 1 kg under 50 kg
// and 2.5 kg above; everything else holds.
func SuggestProgression(currentWeight float64, lastSetRIR int) (float64, string) {
	if lastSetRIR <= 2 {
		increment := 2.5
		if currentWeight < 50 {
			increment = 1
		}
		return currentWeight + increment, ActionIncrease
	}
	return currentWeight, ActionMaintain
}

// PlateauDetected reports a genuine stall: enough observed days, good
// adherence, and a trend change within 0.3% of body weight.
func PlateauDetected(weightChangeKG, bodyWeightKG float64, days int, adherence float64) bool {
	if days < 14 || adherence < 0.80 || bodyWeightKG <= 0 {
		return false
	}
	return math.Abs(weightChangeKG/bodyWeightKG) <= 0.003
}

type DeficitPlan struct {
	TotalDeficit   int `json:"total_deficit"`
	DailyDeficit   int `json:"daily_deficit"`
	TargetCalories int `json:"target_calories"`
}

// BuildCalorieDeficitPlan spreads the energy equivalent of the weight to lose
// across the plan window and subtracts the daily share from TDEE.
func BuildCalorieDeficitPlan(weightToLoseKG float64, weeks int, tdee int) (DeficitPlan, error) {
	if weeks <= 0 {
		return DeficitPlan{}, ErrPlanDurationZero
	}
	totalDeficit := weightToLoseKG * PoundsPerKilogram * CaloriesPerPound
	dailyDeficit := totalDeficit / float64(weeks*7)
	return DeficitPlan{
		TotalDeficit:   int(math.Round(totalDeficit)),
		DailyDeficit:   int(math.Round(dailyDeficit)),
		TargetCalories: tdee - int(math.Round(dailyDeficit)),
	}, nil
}

// WithinCalorieTolerance is the analytics-path adherence check (±10% band).
// Day scoring never uses it; the canonical scoring rule is strict
// intake <= goal in EvaluateDay.
func WithinCalorieTolerance(intake, goal int) bool {
	if goal <= 0 {
		return false
	}
	band := float64(goal) * 0.10
	return math.Abs(float64(intake-goal)) <= band
}
