package models

import "time"

// BodyWeight keeps the raw scale reading alongside the smoothed trend value
// computed at record time. The trend is incremental: each row's TrendKG is
// derived from the previous row's TrendKG plus the new reading.
type BodyWeight struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_weight_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_weight_user_date"`
	WeightKG  float64   `gorm:"not null"`
	TrendKG   float64   `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
