package db

import (
	"time"

	"github.com/terraincognita07/vital/internal/models"
	"gorm.io/gorm"
)

// LogRepository serves the raw activity logs the evaluator consumes: meals,
// sleep sessions, workouts. It implements services.DayLogReader.
type LogRepository struct {
	database *gorm.DB
}

func NewLogRepository(database *gorm.DB) *LogRepository {
	return &LogRepository{database: database}
}

func (repo *LogRepository) ListMealsForDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// ListSleepEndingInRange filters on the session end so a night crossing
// midnight surfaces for its wake-up day only.
func (repo *LogRepository) ListSleepEndingInRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.SleepSession, error) {
	sessions := make([]models.SleepSession, 0)
	if err := repo.database.
		Where("user_id = ? AND end_at >= ? AND end_at < ?", userID, dayStart, dayEnd).
		Order("end_at ASC, id ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListWorkoutsTouchingRange returns timed workouts overlapping the range plus
// duration-only workouts anchored inside it. A timed workout spanning
// midnight therefore surfaces for both days; the evaluator's clipping keeps
// each day's credit disjoint.
func (repo *LogRepository) ListWorkoutsTouchingRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Where(
			repo.database.
				Where("start_at IS NOT NULL AND end_at IS NOT NULL AND start_at < ? AND end_at > ?", dayEnd, dayStart).
				Or("start_at IS NULL AND date >= ? AND date < ?", dayStart, dayEnd),
		).
		Order("date ASC, id ASC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *LogRepository) CreateMeal(meal *models.Meal) error {
	return repo.database.Create(meal).Error
}

func (repo *LogRepository) CreateSleepSession(session *models.SleepSession) error {
	return repo.database.Create(session).Error
}

func (repo *LogRepository) CreateWorkout(workout *models.Workout) error {
	return repo.database.Create(workout).Error
}
