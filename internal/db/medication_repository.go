package db

import (
	"github.com/google/uuid"
	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/store"
	"gorm.io/gorm"
)

type MedicationRepository struct {
	database *gorm.DB
}

func NewMedicationRepository(database *gorm.DB) *MedicationRepository {
	return &MedicationRepository{database: database}
}

func (repo *MedicationRepository) Create(input store.MedicationInput) (models.Medication, error) {
	reminderMinutes := 30
	if input.FoodReminderMinutes != nil {
		reminderMinutes = *input.FoodReminderMinutes
	}

	medication := models.Medication{
		ID:                  uuid.NewString(),
		Name:                input.Name,
		Dosage:              input.Dosage,
		Frequency:           input.Frequency,
		Times:               append([]string(nil), input.Times...),
		RequiresFood:        input.RequiresFood,
		EmptyStomach:        input.EmptyStomach,
		FoodReminderMinutes: reminderMinutes,
		IsActive:            true,
	}
	if err := repo.database.Create(&medication).Error; err != nil {
		return models.Medication{}, err
	}
	return medication, nil
}

func (repo *MedicationRepository) ListActive() ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.Where("is_active = ?", true).Order("rowid ASC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) FindByID(id string) (models.Medication, bool, error) {
	medication := models.Medication{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&medication)
	if result.Error != nil {
		return models.Medication{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Medication{}, false, nil
	}
	return medication, true, nil
}

func (repo *MedicationRepository) Update(id string, update store.MedicationUpdate) (models.Medication, bool, error) {
	medication, found, err := repo.FindByID(id)
	if err != nil || !found {
		return models.Medication{}, found, err
	}

	if update.Name != nil {
		medication.Name = *update.Name
	}
	if update.Dosage != nil {
		medication.Dosage = *update.Dosage
	}
	if update.Frequency != nil {
		medication.Frequency = *update.Frequency
	}
	if update.Times != nil {
		medication.Times = append([]string(nil), update.Times...)
	}
	if update.RequiresFood != nil {
		medication.RequiresFood = *update.RequiresFood
	}
	if update.EmptyStomach != nil {
		medication.EmptyStomach = *update.EmptyStomach
	}
	if update.FoodReminderMinutes != nil {
		medication.FoodReminderMinutes = *update.FoodReminderMinutes
	}
	if update.IsActive != nil {
		medication.IsActive = *update.IsActive
	}

	if err := repo.database.Save(&medication).Error; err != nil {
		return models.Medication{}, false, err
	}
	return medication, true, nil
}

// SoftDelete clears is_active and reports whether the record existed.
func (repo *MedicationRepository) SoftDelete(id string) (bool, error) {
	result := repo.database.Model(&models.Medication{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
