package models

import "time"

// DailySummary is the persisted, already-scored form of a day. Calories,
// CalorieTarget and SleepHours are pointers so that "never logged" stays
// distinguishable from a logged zero; the streak engine relies on that.
type DailySummary struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;uniqueIndex:uidx_summary_user_date"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:uidx_summary_user_date"`
	Calories      *int
	CalorieTarget *int
	SleepHours    *float64
	DidWorkout    bool   `gorm:"not null;default:false"`
	Score         int    `gorm:"not null;default:0"`
	Color         string `gorm:"not null;default:''"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
