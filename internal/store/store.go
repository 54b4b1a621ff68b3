// Package store declares the persistence contract shared by the durable
// sqlite-backed implementation and the in-memory one. Lookups report
// missing records with a false second return instead of an error; callers
// treat that as a normal outcome.
package store

import (
	"time"

	"github.com/medtrackhq/medtrack/internal/models"
)

const DefaultRecentSymptomLimit = 5

// MedicationInput carries the caller-supplied fields for a new medication.
// FoodReminderMinutes is a pointer so an omitted value can fall back to
// the 30-minute default without conflating it with an explicit zero.
type MedicationInput struct {
	Name                string
	Dosage              string
	Frequency           string
	Times               []string
	RequiresFood        bool
	EmptyStomach        bool
	FoodReminderMinutes *int
}

type MedicationUpdate struct {
	Name                *string
	Dosage              *string
	Frequency           *string
	Times               []string
	RequiresFood        *bool
	EmptyStomach        *bool
	FoodReminderMinutes *int
	IsActive            *bool
}

type DoseInput struct {
	MedicationID  string
	ScheduledTime time.Time
	TakenTime     *time.Time
	Status        string
	Date          string
}

type DoseUpdate struct {
	ScheduledTime *time.Time
	TakenTime     *time.Time
	Status        *string
	Date          *string
}

type SymptomInput struct {
	Description string
	Severity    int
	Date        string
}

// SettingsInput replaces the singleton's fields wholesale on upsert;
// NotificationsEnabled defaults to true when omitted.
type SettingsInput struct {
	EmergencyContactName  string
	EmergencyContactPhone string
	DoctorName            string
	DoctorPhone           string
	NotificationsEnabled  *bool
}

type MedicationStore interface {
	CreateMedication(input MedicationInput) (models.Medication, error)
	ListMedications() ([]models.Medication, error)
	GetMedication(id string) (models.Medication, bool, error)
	UpdateMedication(id string, update MedicationUpdate) (models.Medication, bool, error)
	DeleteMedication(id string) (bool, error)
}

type DoseStore interface {
	CreateDose(input DoseInput) (models.MedicationDose, error)
	ListDoses(date string) ([]models.MedicationDose, error)
	GetDose(id string) (models.MedicationDose, bool, error)
	UpdateDose(id string, update DoseUpdate) (models.MedicationDose, bool, error)
	ListDosesByMedication(medicationID string) ([]models.MedicationDose, error)
}

type SymptomStore interface {
	CreateSymptom(input SymptomInput) (models.Symptom, error)
	ListSymptoms(date string) ([]models.Symptom, error)
	ListRecentSymptoms(limit int) ([]models.Symptom, error)
}

type SettingsStore interface {
	GetSettings() (models.UserSettings, bool, error)
	UpsertSettings(input SettingsInput) (models.UserSettings, error)
}

// Store is the full persistence surface the handlers and services depend on.
type Store interface {
	MedicationStore
	DoseStore
	SymptomStore
	SettingsStore
}
