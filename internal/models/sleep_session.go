package models

import "time"

// A sleep session belongs to the day it ends on (the wake-up day), not the
// day it starts. Attribution happens in the services layer because it depends
// on the viewer's timezone.
type SleepSession struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_sleep_user_end"`
	StartAt   time.Time `gorm:"not null"`
	EndAt     time.Time `gorm:"not null;index:idx_sleep_user_end"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
