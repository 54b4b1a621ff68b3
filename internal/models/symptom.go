package models

import "time"

const (
	SeverityMin = 1
	SeverityMax = 5
)

// Symptom is an immutable log entry. Date is recorded separately from
// Timestamp so an entry can be displayed under an earlier day.
type Symptom struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Severity    int       `gorm:"not null" json:"severity"`
	Timestamp   time.Time `gorm:"not null" json:"timestamp"`
	Date        string    `gorm:"not null;index" json:"date"`
}

// ClampSeverity forces severity onto the 1-5 scale.
func ClampSeverity(severity int) int {
	if severity < SeverityMin {
		return SeverityMin
	}
	if severity > SeverityMax {
		return SeverityMax
	}
	return severity
}
