package models

// Medication is a user-registered medication with its dosing schedule.
// Deleting a medication only clears IsActive so historical doses keep
// a valid reference.
type Medication struct {
	ID                  string   `gorm:"primaryKey" json:"id"`
	Name                string   `gorm:"not null" json:"name"`
	Dosage              string   `gorm:"not null" json:"dosage"`
	Frequency           string   `gorm:"not null" json:"frequency"`
	Times               []string `gorm:"serializer:json;not null" json:"times"`
	RequiresFood        bool     `gorm:"not null" json:"requiresFood"`
	EmptyStomach        bool     `gorm:"not null" json:"emptyStomach"`
	FoodReminderMinutes int      `gorm:"not null" json:"foodReminderMinutes"`
	IsActive            bool     `gorm:"not null" json:"isActive"`
}
