package models

import "time"

type Meal struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_meal_user_date"`
	Date      time.Time `gorm:"type:date;not null;index:idx_meal_user_date"`
	Name      string
	Calories  float64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
