package api

type medicationCreateInput struct {
	Name                string   `json:"name"`
	Dosage              string   `json:"dosage"`
	Frequency           string   `json:"frequency"`
	Times               []string `json:"times"`
	RequiresFood        bool     `json:"requiresFood"`
	EmptyStomach        bool     `json:"emptyStomach"`
	FoodReminderMinutes *int     `json:"foodReminderMinutes"`
}

type medicationUpdateInput struct {
	Name                *string  `json:"name"`
	Dosage              *string  `json:"dosage"`
	Frequency           *string  `json:"frequency"`
	Times               []string `json:"times"`
	RequiresFood        *bool    `json:"requiresFood"`
	EmptyStomach        *bool    `json:"emptyStomach"`
	FoodReminderMinutes *int     `json:"foodReminderMinutes"`
	IsActive            *bool    `json:"isActive"`
}

type doseCreateInput struct {
	MedicationID  string  `json:"medicationId"`
	ScheduledTime string  `json:"scheduledTime"`
	TakenTime     *string `json:"takenTime"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
}

type doseUpdateInput struct {
	ScheduledTime *string `json:"scheduledTime"`
	TakenTime     *string `json:"takenTime"`
	Status        *string `json:"status"`
	Date          *string `json:"date"`
}

type symptomCreateInput struct {
	Description string `json:"description"`
	Severity    int    `json:"severity"`
	Date        string `json:"date"`
}

type settingsInput struct {
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	DoctorName            string `json:"doctorName"`
	DoctorPhone           string `json:"doctorPhone"`
	NotificationsEnabled  *bool  `json:"notificationsEnabled"`
}

type generateScheduleInput struct {
	Date string `json:"date"`
}
