// Package memstore is the map-backed store.Store implementation used by
// tests and demo mode. Records are guarded by a single RWMutex; there is
// no read-modify-write isolation across requests, so two overlapping
// updates to one record resolve last-write-wins.
package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/store"
)

type MemStore struct {
	mu sync.RWMutex

	medications   map[string]models.Medication
	medicationIDs []string
	doses         map[string]models.MedicationDose
	doseIDs       []string
	symptoms      map[string]models.Symptom
	symptomIDs    []string
	settings      *models.UserSettings

	now func() time.Time
}

func New() *MemStore {
	return &MemStore{
		medications: make(map[string]models.Medication),
		doses:       make(map[string]models.MedicationDose),
		symptoms:    make(map[string]models.Symptom),
		now:         time.Now,
	}
}

var _ store.Store = (*MemStore)(nil)

func (mem *MemStore) CreateMedication(input store.MedicationInput) (models.Medication, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()

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
	mem.medications[medication.ID] = medication
	mem.medicationIDs = append(mem.medicationIDs, medication.ID)
	return medication, nil
}

func (mem *MemStore) ListMedications() ([]models.Medication, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()

	medications := make([]models.Medication, 0, len(mem.medicationIDs))
	for _, id := range mem.medicationIDs {
		medication := mem.medications[id]
		if medication.IsActive {
			medications = append(medications, medication)
		}
	}
	return medications, nil
}

func (mem *MemStore) GetMedication(id string) (models.Medication, bool, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()

	medication, found := mem.medications[id]
	return medication, found, nil
}

func (mem *MemStore) UpdateMedication(id string, update store.MedicationUpdate) (models.Medication, bool, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()

	medication, found := mem.medications[id]
	if !found {
		return models.Medication{}, false, nil
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

	mem.medications[id] = medication
	return medication, true, nil
}

func (mem *MemStore) DeleteMedication(id string) (bool, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()

	medication, found := mem.medications[id]
	if !found {
		return false, nil
	}
	medication.IsActive = false
	mem.medications[id] = medication
	return true, nil
}

func (mem *MemStore) CreateDose(input store.DoseInput) (models.MedicationDose, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()

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
	mem.doses[dose.ID] = dose
	mem.doseIDs = append(mem.doseIDs, dose.ID)
	return dose, nil
}

func (mem *MemStore) ListDoses(date string) ([]models.MedicationDose, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()

	doses := make([]models.MedicationDose, 0, len(mem.doseIDs))
	for _, id := range mem.doseIDs {
		dose := mem.doses[id]
		if date == "" || dose.Date == date {
			doses = append(doses, dose)
		}
	}
	return doses, nil
}

func (mem *MemStore) GetDose(id string) (models.MedicationDose, bool, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()

	dose, found := mem.doses[id]
	return dose, found, nil
}

func (mem *MemStore) UpdateDose(id string, update store.DoseUpdate) (models.MedicationDose, bool, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()

	dose, found := mem.doses[id]
	if !found {
		return models.MedicationDose{}, false, nil
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

	mem.doses[id] = dose
	return dose, true, nil
}

func (mem *MemStore) ListDosesByMedication(medicationID string) ([]models.MedicationDose, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()

	doses := make([]models.MedicationDose, 0)
	for _, id := range mem.doseIDs {
		dose := mem.doses[id]
		if dose.MedicationID == medicationID {
			doses = append(doses, dose)
		}
	}
	return doses, nil
}

func (mem *MemStore) CreateSymptom(input store.SymptomInput) (models.Symptom, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()

	symptom := models.Symptom{
		ID:          uuid.NewString(),
		Description: input.Description,
		Severity:    models.ClampSeverity(input.Severity),
		Timestamp:   mem.now(),
		Date:        input.Date,
	}
	mem.symptoms[symptom.ID] = symptom
	mem.symptomIDs = append(mem.symptomIDs, symptom.ID)
	return symptom, nil
}

func (mem *MemStore) ListSymptoms(date string) ([]models.Symptom, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()

	symptoms := make([]models.Symptom, 0, len(mem.symptomIDs))
	for _, id := range mem.symptomIDs {
		symptom := mem.symptoms[id]
		if date == "" || symptom.Date == date {
			symptoms = append(symptoms, symptom)
		}
	}
	sortSymptomsNewestFirst(symptoms)
	return symptoms, nil
}

func (mem *MemStore) ListRecentSymptoms(limit int) ([]models.Symptom, error) {
	if limit <= 0 {
		limit = store.DefaultRecentSymptomLimit
	}

	symptoms, err := mem.ListSymptoms("")
	if err != nil {
		return nil, err
	}
	if len(symptoms) > limit {
		symptoms = symptoms[:limit]
	}
	return symptoms, nil
}

func (mem *MemStore) GetSettings() (models.UserSettings, bool, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()

	if mem.settings == nil {
		return models.UserSettings{}, false, nil
	}
	return *mem.settings, true, nil
}

func (mem *MemStore) UpsertSettings(input store.SettingsInput) (models.UserSettings, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()

	id := uuid.NewString()
	if mem.settings != nil {
		id = mem.settings.ID
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
	mem.settings = &settings
	return settings, nil
}

func sortSymptomsNewestFirst(symptoms []models.Symptom) {
	sort.SliceStable(symptoms, func(i, j int) bool {
		return symptoms[i].Timestamp.After(symptoms[j].Timestamp)
	})
}
