package db

import (
	"github.com/google/uuid"
	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/store"
	"gorm.io/gorm"
)

type DoseRepository struct {
	database *gorm.DB
}

func NewDoseRepository(database *gorm.DB) *DoseRepository {
	return &DoseRepository{database: database}
}

func (repo *DoseRepository) Create(input store.DoseInput) (models.MedicationDose, error) {
	status := input.Status
	if status == "" {
		status = models.DoseStatusPending
	}

	dose := models.MedicationDose{
		ID:            uuid.NewString(),
		MedicationID:  input.MedicationID,
		ScheduledTime: input.ScheduledTime,
		TakenTime:     input.TakenTime,
		Status:        status,
		Date:          input.Date,
	}
	if err := repo.database.Create(&dose).Error; err != nil {
		return models.MedicationDose{}, err
	}
	return dose, nil
}

// List returns every dose, or only the doses of one calendar day when
// date is non-empty. Dates compare as plain strings.
func (repo *DoseRepository) List(date string) ([]models.MedicationDose, error) {
	query := repo.database.Model(&models.MedicationDose{})
	if date != "" {
		query = query.Where("date = ?", date)
	}

	doses := make([]models.MedicationDose, 0)
	if err := query.Order("scheduled_time ASC, rowid ASC").Find(&doses).Error; err != nil {
		return nil, err
	}
	return doses, nil
}

func (repo *DoseRepository) FindByID(id string) (models.MedicationDose, bool, error) {
	dose := models.MedicationDose{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&dose)
	if result.Error != nil {
		return models.MedicationDose{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MedicationDose{}, false, nil
	}
	return dose, true, nil
}

func (repo *DoseRepository) Update(id string, update store.DoseUpdate) (models.MedicationDose, bool, error) {
	dose, found, err := repo.FindByID(id)
	if err != nil || !found {
		return models.MedicationDose{}, found, err
	}

	if update.ScheduledTime != nil {
		dose.ScheduledTime = *update.ScheduledTime
	}
	if update.TakenTime != nil {
		dose.TakenTime = update.TakenTime
	}
	if update.Status != nil {
		dose.Status = *update.Status
	}
	if update.Date != nil {
		dose.Date = *update.Date
	}

	if err := repo.database.Save(&dose).Error; err != nil {
		return models.MedicationDose{}, false, err
	}
	return dose, true, nil
}

func (repo *DoseRepository) ListByMedication(medicationID string) ([]models.MedicationDose, error) {
	doses := make([]models.MedicationDose, 0)
	if err := repo.database.
		Where("medication_id = ?", medicationID).
		Order("scheduled_time ASC, rowid ASC").
		Find(&doses).Error; err != nil {
		return nil, err
	}
	return doses, nil
}
