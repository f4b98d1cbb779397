package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/vital/internal/models"
)

var (
	ErrWeightLoadFailed    = errors.New("load body weights failed")
	ErrWeightPersistFailed = errors.New("persist body weight failed")
	ErrWeightNotPositive   = errors.New("weight must be positive")
)

type WeightStore interface {
	ListRecentByUser(userID uint, limit int) ([]models.BodyWeight, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.BodyWeight, bool, error)
	Create(entry *models.BodyWeight) error
	Save(entry *models.BodyWeight) error
}

type IntakeReader interface {
	ListMealsForDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Meal, error)
}

type GoalService struct {
	weights WeightStore
	meals   IntakeReader
}

func NewGoalService(weights WeightStore, meals IntakeReader) *GoalService {
	return &GoalService{
		weights: weights,
		meals:   meals,
	}
}

// RecordWeight stores a scale reading and advances the smoothed trend. The
// first reading seeds the trend from a moving average of whatever raw values
// exist (itself included); later readings blend incrementally.
func (service *GoalService) RecordWeight(userID uint, day time.Time, weightKG float64, location *time.Location) (models.BodyWeight, error) {
	if weightKG <= 0 {
		return models.BodyWeight{}, ErrWeightNotPositive
	}
	dayStart, dayEnd := DayRange(day, location)

	recent, err := service.weights.ListRecentByUser(userID, 2)
	if err != nil {
		return models.BodyWeight{}, ErrWeightLoadFailed
	}

	// Blend against the last trend from a different day so re-recording
	// today's weight replaces the reading instead of compounding the filter.
	trend := MovingAverage([]float64{weightKG})
	for _, prior := range recent {
		if SameDay(prior.Date, dayStart) {
			continue
		}
		if prior.TrendKG > 0 {
			trend = TrendWeight(prior.TrendKG, weightKG)
		}
		break
	}

	entry, found, err := service.weights.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.BodyWeight{}, ErrWeightLoadFailed
	}
	if !found {
		entry = models.BodyWeight{
			UserID: userID,
			Date:   dayStart,
		}
	}
	entry.WeightKG = weightKG
	entry.TrendKG = trend

	if found {
		if err := service.weights.Save(&entry); err != nil {
			return models.BodyWeight{}, ErrWeightPersistFailed
		}
		return entry, nil
	}
	if err := service.weights.Create(&entry); err != nil {
		return models.BodyWeight{}, ErrWeightPersistFailed
	}
	return entry, nil
}

// AdaptiveTDEEForUser back-calculates expenditure from the last windowDays of
// logged intake and the trend movement across the same window. Returns 0 when
// there is not enough history to say anything.
func (service *GoalService) AdaptiveTDEEForUser(userID uint, now time.Time, windowDays int, location *time.Location) (int, error) {
	if windowDays <= 0 {
		windowDays = DefaultTrendDays
	}
	today, _ := DayRange(now, location)
	windowStart := today.AddDate(0, 0, -windowDays)

	meals, err := service.meals.ListMealsForDayRange(userID, windowStart, today)
	if err != nil {
		return 0, ErrDayLogsLoadFailed
	}
	if len(meals) == 0 {
		return 0, nil
	}
	intakeByDay := make(map[string]float64)
	for _, meal := range meals {
		if meal.Calories > 0 {
			intakeByDay[meal.Date.Format("2006-01-02")] += meal.Calories
		}
	}
	dailyIntakes := make([]float64, 0, len(intakeByDay))
	for _, total := range intakeByDay {
		dailyIntakes = append(dailyIntakes, total)
	}
	averageIntake := MovingAverage(dailyIntakes)

	weights, err := service.weights.ListRecentByUser(userID, windowDays)
	if err != nil {
		return 0, ErrWeightLoadFailed
	}
	if len(weights) < 2 {
		return 0, nil
	}
	// ListRecentByUser is date-descending: delta is oldest minus newest,
	// positive when weight came off.
	trendDelta := weights[len(weights)-1].TrendKG - weights[0].TrendKG

	return AdaptiveTDEE(averageIntake, trendDelta, windowDays), nil
}

// CheckPlateau runs plateau detection over the recent trend, using the ±10%
// calorie band purely as the adherence ratio input. This is the analytics
// path; day scoring stays strict.
func (service *GoalService) CheckPlateau(userID uint, user *models.User, now time.Time, windowDays int, location *time.Location) (bool, error) {
	if windowDays <= 0 {
		windowDays = 14
	}
	today, _ := DayRange(now, location)
	windowStart := today.AddDate(0, 0, -windowDays)

	weights, err := service.weights.ListRecentByUser(userID, windowDays)
	if err != nil {
		return false, ErrWeightLoadFailed
	}
	if len(weights) < 2 {
		return false, nil
	}
	trendDelta := weights[0].TrendKG - weights[len(weights)-1].TrendKG
	bodyWeight := weights[0].WeightKG

	meals, err := service.meals.ListMealsForDayRange(userID, windowStart, today)
	if err != nil {
		return false, ErrDayLogsLoadFailed
	}
	adherence := calorieAdherence(meals, user.CalorieGoal, windowDays)

	return PlateauDetected(trendDelta, bodyWeight, windowDays, adherence), nil
}

// PlanTargets turns a deficit plan into the Targets value the evaluator
// consumes, keeping the user's configured sleep goal.
func (service *GoalService) PlanTargets(user *models.User, weightToLoseKG float64, weeks int, now time.Time) (Targets, DeficitPlan, error) {
	bmr := BMR(user.WeightKG, user.HeightCM, user.AgeAt(now), user.Sex)
	factor, ok := ActivityFactor(user.ActivityLevel)
	if !ok {
		factor = activityFactors[models.ActivityModerate]
	}
	plan, err := BuildCalorieDeficitPlan(weightToLoseKG, weeks, TDEE(bmr, factor))
	if err != nil {
		return Targets{}, DeficitPlan{}, err
	}
	return Targets{
		CalorieGoal:      plan.TargetCalories,
		SleepGoalMinutes: user.SleepGoalMinutes,
	}, plan, nil
}

// calorieAdherence is the share of window days whose intake landed inside the
// ±10% tolerance band around the goal.
func calorieAdherence(meals []models.Meal, calorieGoal, windowDays int) float64 {
	if windowDays <= 0 || calorieGoal <= 0 {
		return 0
	}
	intakeByDay := make(map[string]float64)
	for _, meal := range meals {
		if meal.Calories > 0 {
			intakeByDay[meal.Date.Format("2006-01-02")] += meal.Calories
		}
	}
	adherentDays := 0
	for _, total := range intakeByDay {
		if WithinCalorieTolerance(int(total+0.5), calorieGoal) {
			adherentDays++
		}
	}
	return float64(adherentDays) / float64(windowDays)
}
