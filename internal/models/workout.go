package models

import "time"

// A workout is either timed (StartAt and EndAt set) or duration-only
// (DurationMinutes set, anchored to Date). Timed workouts may cross midnight;
// the evaluator clips them to day boundaries.
type Workout struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index:idx_workout_user_date"`
	Date            time.Time `gorm:"type:date;not null;index:idx_workout_user_date"`
	Kind            string
	StartAt         *time.Time
	EndAt           *time.Time
	DurationMinutes int `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (workout *Workout) IsTimed() bool {
	return workout.StartAt != nil && workout.EndAt != nil
}
