package models

import "time"

const (
	DoseStatusPending = "pending"
	DoseStatusTaken   = "taken"
	DoseStatusLate    = "late"
	DoseStatusMissed  = "missed"
)

// MedicationDose is one scheduled intake of a medication on a calendar day.
// Date carries the day as a plain YYYY-MM-DD string so day filtering is a
// string comparison, independent of the scheduled timestamp's zone.
type MedicationDose struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	MedicationID  string     `gorm:"not null;index" json:"medicationId"`
	ScheduledTime time.Time  `gorm:"not null" json:"scheduledTime"`
	TakenTime     *time.Time `json:"takenTime"`
	Status        string     `gorm:"not null" json:"status"`
	Date          string     `gorm:"not null;index" json:"date"`
}

// ValidDoseStatus reports whether status is one of the four known states.
func ValidDoseStatus(status string) bool {
	switch status {
	case DoseStatusPending, DoseStatusTaken, DoseStatusLate, DoseStatusMissed:
		return true
	default:
		return false
	}
}
