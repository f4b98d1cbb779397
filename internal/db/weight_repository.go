package db

import (
	"time"

	"github.com/terraincognita07/vital/internal/models"
	"gorm.io/gorm"
)

type WeightRepository struct {
	database *gorm.DB
}

func NewWeightRepository(database *gorm.DB) *WeightRepository {
	return &WeightRepository{database: database}
}

func (repo *WeightRepository) ListRecentByUser(userID uint, limit int) ([]models.BodyWeight, error) {
	entries := make([]models.BodyWeight, 0)
	query := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WeightRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.BodyWeight, bool, error) {
	entry := models.BodyWeight{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.BodyWeight{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.BodyWeight{}, false, nil
	}
	return entry, true, nil
}

func (repo *WeightRepository) Create(entry *models.BodyWeight) error {
	return repo.database.Create(entry).Error
}

func (repo *WeightRepository) Save(entry *models.BodyWeight) error {
	return repo.database.Save(entry).Error
}
