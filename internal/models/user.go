package models

import "time"

const (
	SexMale   = "male"
	SexFemale = "female"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

const (
	DefaultCalorieGoal      = 2000
	DefaultSleepGoalMinutes = 360
)

type User struct {
	ID               uint      `gorm:"primaryKey"`
	Email            string    `gorm:"uniqueIndex;not null"`
	PasswordHash     string    `gorm:"not null"`
	Sex              string    `gorm:"not null;default:male"`
	HeightCM         float64   `gorm:"not null;default:0"`
	WeightKG         float64   `gorm:"not null;default:0"`
	BirthYear        int       `gorm:"not null;default:0"`
	ActivityLevel    string    `gorm:"not null;default:moderate"`
	CalorieGoal      int       `gorm:"not null;default:2000"`
	SleepGoalMinutes int       `gorm:"not null;default:360"`
	CreatedAt        time.Time `gorm:"not null"`
}

func (user *User) AgeAt(now time.Time) int {
	if user.BirthYear <= 0 {
		return 0
	}
	age := now.Year() - user.BirthYear
	if age < 0 {
		return 0
	}
	return age
}
