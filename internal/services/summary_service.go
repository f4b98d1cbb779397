package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/vital/internal/models"
)

var (
	ErrDayLogsLoadFailed    = errors.New("load day logs failed")
	ErrSummaryLoadFailed    = errors.New("load daily summary failed")
	ErrSummaryPersistFailed = errors.New("persist daily summary failed")
)

// DefaultStreakLookbackDays bounds how far back the streak walk fetches
// summaries; a streak longer than a year is reported at the cap.
const DefaultStreakLookbackDays = 366

type DayLogReader interface {
	ListMealsForDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Meal, error)
	ListSleepEndingInRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.SleepSession, error)
	ListWorkoutsTouchingRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Workout, error)
}

type SummaryStore interface {
	ListRecentByUser(userID uint, limit int) ([]models.DailySummary, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailySummary, bool, error)
	Create(record *models.DailySummary) error
	Save(record *models.DailySummary) error
}

type SummaryService struct {
	logs      DayLogReader
	summaries SummaryStore
}

func NewSummaryService(logs DayLogReader, summaries SummaryStore) *SummaryService {
	return &SummaryService{
		logs:      logs,
		summaries: summaries,
	}
}

// EvaluateDate pulls one day's raw logs and runs the evaluator over them.
func (service *SummaryService) EvaluateDate(userID uint, day time.Time, targets Targets, location *time.Location) (DailyResult, error) {
	dayStart, dayEnd := DayRange(day, location)

	meals, err := service.logs.ListMealsForDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return DailyResult{}, ErrDayLogsLoadFailed
	}
	sessions, err := service.logs.ListSleepEndingInRange(userID, dayStart, dayEnd)
	if err != nil {
		return DailyResult{}, ErrDayLogsLoadFailed
	}
	workouts, err := service.logs.ListWorkoutsTouchingRange(userID, dayStart, dayEnd)
	if err != nil {
		return DailyResult{}, ErrDayLogsLoadFailed
	}

	return EvaluateDay(DailyInputs{
		Date:          dayStart,
		Location:      location,
		Targets:       targets,
		Meals:         meals,
		SleepSessions: sessions,
		Workouts:      workouts,
	}), nil
}

// UpsertSummaryForResult writes the scored day back so the streak walk can
// read it later without re-evaluating raw logs.
func (service *SummaryService) UpsertSummaryForResult(userID uint, result DailyResult, location *time.Location) (models.DailySummary, error) {
	dayStart, dayEnd := DayRange(result.Date, location)

	record, found, err := service.summaries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailySummary{}, ErrSummaryLoadFailed
	}

	calories := result.CalorieIntake
	target := result.CalorieGoal
	sleepHours := float64(result.SleepMinutes) / 60

	if !found {
		record = models.DailySummary{
			UserID: userID,
			Date:   dayStart,
		}
	}
	record.Calories = &calories
	record.CalorieTarget = &target
	record.SleepHours = &sleepHours
	record.DidWorkout = result.ExerciseOK
	record.Score = result.Score
	record.Color = result.Color

	if found {
		if err := service.summaries.Save(&record); err != nil {
			return models.DailySummary{}, ErrSummaryPersistFailed
		}
		return record, nil
	}
	if err := service.summaries.Create(&record); err != nil {
		return models.DailySummary{}, ErrSummaryPersistFailed
	}
	return record, nil
}

// EvaluateAndStoreDate is the write path behind POST /api/days/:date/summary.
func (service *SummaryService) EvaluateAndStoreDate(userID uint, day time.Time, targets Targets, location *time.Location) (DailyResult, error) {
	result, err := service.EvaluateDate(userID, day, targets, location)
	if err != nil {
		return DailyResult{}, err
	}
	if _, err := service.UpsertSummaryForResult(userID, result, location); err != nil {
		return DailyResult{}, err
	}
	return result, nil
}

// CurrentStreakForUser normalizes the most recent summaries and walks them.
// Both the raw walk and the display clamp are returned so callers pick a
// convention deliberately.
func (service *SummaryService) CurrentStreakForUser(userID uint) (StreakResult, StreakResult, error) {
	records, err := service.summaries.ListRecentByUser(userID, DefaultStreakLookbackDays)
	if err != nil {
		return StreakResult{}, StreakResult{}, ErrSummaryLoadFailed
	}
	walked := CalculateStreak(NormalizeSummaries(records))
	return walked, DisplayStreak(walked), nil
}
