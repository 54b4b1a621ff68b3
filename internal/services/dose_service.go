package services

import (
	"errors"
	"time"

	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/store"
)

var ErrInvalidDoseStatus = errors.New("invalid dose status")

// missedAfter is how long a dose may stay pending past its scheduled
// time before the sweep marks it missed.
const missedAfter = time.Hour

type DoseServiceStore interface {
	ListDoses(date string) ([]models.MedicationDose, error)
	GetDose(id string) (models.MedicationDose, bool, error)
	UpdateDose(id string, update store.DoseUpdate) (models.MedicationDose, bool, error)
}

// DoseService applies status transitions to doses.
type DoseService struct {
	doses DoseServiceStore
	now   func() time.Time
}

func NewDoseService(doses DoseServiceStore) *DoseService {
	return &DoseService{
		doses: doses,
		now:   time.Now,
	}
}

// Update applies a partial dose update. A transition to taken or late
// without an explicit taken time is stamped with the current time.
func (service *DoseService) Update(id string, update store.DoseUpdate) (models.MedicationDose, bool, error) {
	if update.Status != nil {
		if !models.ValidDoseStatus(*update.Status) {
			return models.MedicationDose{}, false, ErrInvalidDoseStatus
		}
		if (*update.Status == models.DoseStatusTaken || *update.Status == models.DoseStatusLate) && update.TakenTime == nil {
			takenTime := service.now()
			update.TakenTime = &takenTime
		}
	}

	return service.doses.UpdateDose(id, update)
}

// SweepOverdue marks doses that are still pending more than missedAfter
// past their scheduled time as missed, and returns how many it flipped.
func (service *DoseService) SweepOverdue() (int, error) {
	doses, err := service.doses.ListDoses("")
	if err != nil {
		return 0, err
	}

	cutoff := service.now().Add(-missedAfter)
	missedStatus := models.DoseStatusMissed

	swept := 0
	for _, dose := range doses {
		if dose.Status != models.DoseStatusPending || !dose.ScheduledTime.Before(cutoff) {
			continue
		}
		if _, _, err := service.doses.UpdateDose(dose.ID, store.DoseUpdate{Status: &missedStatus}); err != nil {
			return swept, err
		}
		swept++
	}
	return swept, nil
}
