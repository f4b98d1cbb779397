package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/vital/internal/models"
)

var (
	ErrProfileSexInvalid      = errors.New("profile sex invalid")
	ErrProfileActivityInvalid = errors.New("profile activity level invalid")
	ErrProfileValueInvalid    = errors.New("profile value out of range")
)

type SettingsUserRepository interface {
	UpdateByID(userID uint, updates map[string]any) error
}

// ProfileUpdate is a full replacement of the tunable profile fields; every
// field must be supplied and valid.
type ProfileUpdate struct {
	Sex              string
	HeightCM         float64
	WeightKG         float64
	BirthYear        int
	ActivityLevel    string
	CalorieGoal      int
	SleepGoalMinutes int
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

func (service *SettingsService) SaveProfile(userID uint, update ProfileUpdate, now time.Time) error {
	if err := ValidateProfileUpdate(update, now); err != nil {
		return err
	}
	return service.users.UpdateByID(userID, map[string]any{
		"sex":                update.Sex,
		"height_cm":          update.HeightCM,
		"weight_kg":          update.WeightKG,
		"birth_year":         update.BirthYear,
		"activity_level":     update.ActivityLevel,
		"calorie_goal":       update.CalorieGoal,
		"sleep_goal_minutes": update.SleepGoalMinutes,
	})
}

func ValidateProfileUpdate(update ProfileUpdate, now time.Time) error {
	if update.Sex != models.SexMale && update.Sex != models.SexFemale {
		return ErrProfileSexInvalid
	}
	if _, known := ActivityFactor(update.ActivityLevel); !known {
		return ErrProfileActivityInvalid
	}
	if update.HeightCM <= 0 || update.WeightKG <= 0 {
		return ErrProfileValueInvalid
	}
	if update.BirthYear < 1900 || update.BirthYear > now.Year() {
		return ErrProfileValueInvalid
	}
	if update.CalorieGoal <= 0 || update.SleepGoalMinutes <= 0 {
		return ErrProfileValueInvalid
	}
	return nil
}
