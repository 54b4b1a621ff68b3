package db

import (
	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/store"
	"gorm.io/gorm"
)

// Store adapts the per-entity repositories to the store.Store contract.
type Store struct {
	Medications *MedicationRepository
	Doses       *DoseRepository
	Symptoms    *SymptomRepository
	Settings    *SettingsRepository
}

func NewStore(database *gorm.DB) *Store {
	return &Store{
		Medications: NewMedicationRepository(database),
		Doses:       NewDoseRepository(database),
		Symptoms:    NewSymptomRepository(database),
		Settings:    NewSettingsRepository(database),
	}
}

var _ store.Store = (*Store)(nil)

func (dbStore *Store) CreateMedication(input store.MedicationInput) (models.Medication, error) {
	return dbStore.Medications.Create(input)
}

func (dbStore *Store) ListMedications() ([]models.Medication, error) {
	return dbStore.Medications.ListActive()
}

func (dbStore *Store) GetMedication(id string) (models.Medication, bool, error) {
	return dbStore.Medications.FindByID(id)
}

func (dbStore *Store) UpdateMedication(id string, update store.MedicationUpdate) (models.Medication, bool, error) {
	return dbStore.Medications.Update(id, update)
}

func (dbStore *Store) DeleteMedication(id string) (bool, error) {
	return dbStore.Medications.SoftDelete(id)
}

func (dbStore *Store) CreateDose(input store.DoseInput) (models.MedicationDose, error) {
	return dbStore.Doses.Create(input)
}

func (dbStore *Store) ListDoses(date string) ([]models.MedicationDose, error) {
	return dbStore.Doses.List(date)
}

func (dbStore *Store) GetDose(id string) (models.MedicationDose, bool, error) {
	return dbStore.Doses.FindByID(id)
}

func (dbStore *Store) UpdateDose(id string, update store.DoseUpdate) (models.MedicationDose, bool, error) {
	return dbStore.Doses.Update(id, update)
}

func (dbStore *Store) ListDosesByMedication(medicationID string) ([]models.MedicationDose, error) {
	return dbStore.Doses.ListByMedication(medicationID)
}

func (dbStore *Store) CreateSymptom(input store.SymptomInput) (models.Symptom, error) {
	return dbStore.Symptoms.Create(input)
}

func (dbStore *Store) ListSymptoms(date string) ([]models.Symptom, error) {
	return dbStore.Symptoms.List(date)
}

func (dbStore *Store) ListRecentSymptoms(limit int) ([]models.Symptom, error) {
	return dbStore.Symptoms.ListRecent(limit)
}

func (dbStore *Store) GetSettings() (models.UserSettings, bool, error) {
	return dbStore.Settings.Get()
}

func (dbStore *Store) UpsertSettings(input store.SettingsInput) (models.UserSettings, error) {
	return dbStore.Settings.Upsert(input)
}
