package models

// UserSettings is a singleton record: at most one row exists and writes
// upsert it in place.
type UserSettings struct {
	ID                    string `gorm:"primaryKey" json:"id"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	DoctorName            string `json:"doctorName"`
	DoctorPhone           string `json:"doctorPhone"`
	NotificationsEnabled  bool   `gorm:"not null" json:"notificationsEnabled"`
}
