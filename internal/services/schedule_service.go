package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/store"
)

var (
	ErrInvalidScheduleDate = errors.New("invalid schedule date")
	ErrInvalidDoseTime     = errors.New("invalid dose time")
)

type ScheduleMedicationSource interface {
	ListMedications() ([]models.Medication, error)
}

type ScheduleDoseStore interface {
	ListDoses(date string) ([]models.MedicationDose, error)
	CreateDose(input store.DoseInput) (models.MedicationDose, error)
}

// ScheduleService expands each active medication's configured times of
// day into concrete pending doses for one calendar date.
type ScheduleService struct {
	medications ScheduleMedicationSource
	doses       ScheduleDoseStore
	location    *time.Location
}

func NewScheduleService(medications ScheduleMedicationSource, doses ScheduleDoseStore, location *time.Location) *ScheduleService {
	if location == nil {
		location = time.Local
	}
	return &ScheduleService{
		medications: medications,
		doses:       doses,
		location:    location,
	}
}

// GenerateForDate creates a pending dose for every (active medication,
// time-of-day) pair not yet materialized for the given YYYY-MM-DD date,
// and returns how many doses it created. Slots that already have a dose
// are skipped, so re-running for the same date is a no-op. An error
// mid-batch leaves earlier slots created; a retry picks up the rest.
func (service *ScheduleService) GenerateForDate(date string) (int, error) {
	day, err := time.ParseInLocation("2006-01-02", date, service.location)
	if err != nil {
		return 0, ErrInvalidScheduleDate
	}

	medications, err := service.medications.ListMedications()
	if err != nil {
		return 0, err
	}

	existingDoses, err := service.doses.ListDoses(date)
	if err != nil {
		return 0, err
	}

	materialized := make(map[string]struct{}, len(existingDoses))
	for _, dose := range existingDoses {
		materialized[doseSlotKey(dose.MedicationID, dose.ScheduledTime.In(service.location).Format("15:04"))] = struct{}{}
	}

	created := 0
	for _, medication := range medications {
		for _, timeOfDay := range medication.Times {
			if _, exists := materialized[doseSlotKey(medication.ID, timeOfDay)]; exists {
				continue
			}

			scheduledTime, err := timeOfDayOnDate(day, timeOfDay, service.location)
			if err != nil {
				return created, fmt.Errorf("%w: medication %s time %q", ErrInvalidDoseTime, medication.ID, timeOfDay)
			}

			if _, err := service.doses.CreateDose(store.DoseInput{
				MedicationID:  medication.ID,
				ScheduledTime: scheduledTime,
				Status:        models.DoseStatusPending,
				Date:          date,
			}); err != nil {
				return created, err
			}

			materialized[doseSlotKey(medication.ID, timeOfDay)] = struct{}{}
			created++
		}
	}

	return created, nil
}

func doseSlotKey(medicationID string, timeOfDay string) string {
	return medicationID + "@" + timeOfDay
}

func timeOfDayOnDate(day time.Time, timeOfDay string, location *time.Location) (time.Time, error) {
	clock, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, location), nil
}
