package db

import (
	"time"

	"github.com/terraincognita07/vital/internal/models"
	"gorm.io/gorm"
)

type SummaryRepository struct {
	database *gorm.DB
}

func NewSummaryRepository(database *gorm.DB) *SummaryRepository {
	return &SummaryRepository{database: database}
}

// ListRecentByUser returns summaries newest-first, the order the streak walk
// expects.
func (repo *SummaryRepository) ListRecentByUser(userID uint, limit int) ([]models.DailySummary, error) {
	records := make([]models.DailySummary, 0)
	query := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SummaryRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailySummary, bool, error) {
	record := models.DailySummary{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.DailySummary{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailySummary{}, false, nil
	}
	return record, true, nil
}

func (repo *SummaryRepository) Create(record *models.DailySummary) error {
	return repo.database.Create(record).Error
}

func (repo *SummaryRepository) Save(record *models.DailySummary) error {
	return repo.database.Save(record).Error
}
