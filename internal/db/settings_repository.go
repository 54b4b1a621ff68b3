package db

import (
	"github.com/google/uuid"
	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/store"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) Get() (models.UserSettings, bool, error) {
	settings := models.UserSettings{}
	result := repo.database.Order("rowid ASC").Limit(1).Find(&settings)
	if result.Error != nil {
		return models.UserSettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserSettings{}, false, nil
	}
	return settings, true, nil
}

// Upsert replaces the singleton row's fields, creating it on first write.
// The record id stays stable across updates.
func (repo *SettingsRepository) Upsert(input store.SettingsInput) (models.UserSettings, error) {
	existing, found, err := repo.Get()
	if err != nil {
		return models.UserSettings{}, err
	}

	id := uuid.NewString()
	if found {
		id = existing.ID
	}

	notificationsEnabled := true
	if input.NotificationsEnabled != nil {
		notificationsEnabled = *input.NotificationsEnabled
	}

	settings := models.UserSettings{
		ID:                    id,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		DoctorName:            input.DoctorName,
		DoctorPhone:           input.DoctorPhone,
		NotificationsEnabled:  notificationsEnabled,
	}
	if err := repo.database.Save(&settings).Error; err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}
