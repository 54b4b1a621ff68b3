package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/store"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) Create(input store.SymptomInput) (models.Symptom, error) {
	symptom := models.Symptom{
		ID:          uuid.NewString(),
		Description: input.Description,
		Severity:    models.ClampSeverity(input.Severity),
		Timestamp:   time.Now(),
		Date:        input.Date,
	}
	if err := repo.database.Create(&symptom).Error; err != nil {
		return models.Symptom{}, err
	}
	return symptom, nil
}

func (repo *SymptomRepository) List(date string) ([]models.Symptom, error) {
	query := repo.database.Model(&models.Symptom{})
	if date != "" {
		query = query.Where("date = ?", date)
	}

	symptoms := make([]models.Symptom, 0)
	if err := query.Order("timestamp DESC, rowid DESC").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) ListRecent(limit int) ([]models.Symptom, error) {
	if limit <= 0 {
		limit = store.DefaultRecentSymptomLimit
	}

	symptoms := make([]models.Symptom, 0, limit)
	if err := repo.database.
		Order("timestamp DESC, rowid DESC").
		Limit(limit).
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}
