package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Logs      *LogRepository
	Summaries *SummaryRepository
	Weights   *WeightRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Logs:      NewLogRepository(database),
		Summaries: NewSummaryRepository(database),
		Weights:   NewWeightRepository(database),
	}
}
