package memstore

import (
	"testing"
	"time"

	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/store"
)

func TestCreateMedicationAppliesDefaults(t *testing.T) {
	mem := New()

	medication, err := mem.CreateMedication(store.MedicationInput{
		Name:      "Lisinopril",
		Dosage:    "10mg",
		Frequency: "once daily",
		Times:     []string{"08:00"},
	})
	if err != nil {
		t.Fatalf("CreateMedication() unexpected error: %v", err)
	}

	if medication.ID == "" {
		t.Fatal("CreateMedication() assigned no id")
	}
	if medication.RequiresFood || medication.EmptyStomach {
		t.Fatalf("CreateMedication() food flags = %v/%v, want false/false", medication.RequiresFood, medication.EmptyStomach)
	}
	if medication.FoodReminderMinutes != 30 {
		t.Fatalf("CreateMedication() foodReminderMinutes = %d, want 30", medication.FoodReminderMinutes)
	}
	if !medication.IsActive {
		t.Fatal("CreateMedication() isActive = false, want true")
	}
}

func TestCreateMedicationKeepsExplicitReminderMinutes(t *testing.T) {
	mem := New()

	reminderMinutes := 0
	medication, err := mem.CreateMedication(store.MedicationInput{
		Name:                "Metformin",
		Dosage:              "500mg",
		Frequency:           "twice daily",
		Times:               []string{"08:00", "20:00"},
		FoodReminderMinutes: &reminderMinutes,
	})
	if err != nil {
		t.Fatalf("CreateMedication() unexpected error: %v", err)
	}
	if medication.FoodReminderMinutes != 0 {
		t.Fatalf("CreateMedication() foodReminderMinutes = %d, want explicit 0", medication.FoodReminderMinutes)
	}
}

func TestDeleteMedicationIsSoft(t *testing.T) {
	mem := New()

	medication, err := mem.CreateMedication(store.MedicationInput{
		Name: "Aspirin", Dosage: "81mg", Frequency: "once daily", Times: []string{"09:00"},
	})
	if err != nil {
		t.Fatalf("CreateMedication() unexpected error: %v", err)
	}

	deleted, err := mem.DeleteMedication(medication.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteMedication() = %v, %v, want true, nil", deleted, err)
	}

	active, err := mem.ListMedications()
	if err != nil {
		t.Fatalf("ListMedications() unexpected error: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("ListMedications() after delete returned %d entries, want 0", len(active))
	}

	stored, found, err := mem.GetMedication(medication.ID)
	if err != nil || !found {
		t.Fatalf("GetMedication() after delete = found %v, err %v, want record kept", found, err)
	}
	if stored.IsActive {
		t.Fatal("GetMedication() after delete still active, want isActive=false")
	}

	deletedAgain, err := mem.DeleteMedication("missing")
	if err != nil || deletedAgain {
		t.Fatalf("DeleteMedication(missing) = %v, %v, want false, nil", deletedAgain, err)
	}
}

func TestUpdateMedicationMergesFields(t *testing.T) {
	mem := New()

	medication, _ := mem.CreateMedication(store.MedicationInput{
		Name: "Sertraline", Dosage: "50mg", Frequency: "once daily", Times: []string{"08:00"},
	})

	newDosage := "100mg"
	updated, found, err := mem.UpdateMedication(medication.ID, store.MedicationUpdate{Dosage: &newDosage})
	if err != nil || !found {
		t.Fatalf("UpdateMedication() = found %v, err %v", found, err)
	}
	if updated.Dosage != "100mg" {
		t.Fatalf("UpdateMedication() dosage = %q, want 100mg", updated.Dosage)
	}
	if updated.Name != "Sertraline" || len(updated.Times) != 1 {
		t.Fatalf("UpdateMedication() touched unrelated fields: %#v", updated)
	}

	_, found, err = mem.UpdateMedication("missing", store.MedicationUpdate{Dosage: &newDosage})
	if err != nil || found {
		t.Fatalf("UpdateMedication(missing) = found %v, err %v, want false, nil", found, err)
	}
}

func TestCreateDoseDefaultsToPending(t *testing.T) {
	mem := New()

	dose, err := mem.CreateDose(store.DoseInput{
		MedicationID:  "med-1",
		ScheduledTime: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
		Date:          "2024-01-15",
	})
	if err != nil {
		t.Fatalf("CreateDose() unexpected error: %v", err)
	}
	if dose.Status != models.DoseStatusPending {
		t.Fatalf("CreateDose() status = %q, want pending", dose.Status)
	}
	if dose.TakenTime != nil {
		t.Fatalf("CreateDose() takenTime = %v, want nil", dose.TakenTime)
	}
}

func TestListDosesFiltersByDate(t *testing.T) {
	mem := New()

	mustCreateDose(t, mem, "med-1", "2024-01-15")
	mustCreateDose(t, mem, "med-1", "2024-01-16")
	mustCreateDose(t, mem, "med-2", "2024-01-15")

	all, err := mem.ListDoses("")
	if err != nil || len(all) != 3 {
		t.Fatalf("ListDoses(\"\") = %d entries, err %v, want 3", len(all), err)
	}

	day, err := mem.ListDoses("2024-01-15")
	if err != nil || len(day) != 2 {
		t.Fatalf("ListDoses(2024-01-15) = %d entries, err %v, want 2", len(day), err)
	}

	byMedication, err := mem.ListDosesByMedication("med-1")
	if err != nil || len(byMedication) != 2 {
		t.Fatalf("ListDosesByMedication(med-1) = %d entries, err %v, want 2", len(byMedication), err)
	}
}

func TestUpdateDoseKeepsIdentity(t *testing.T) {
	mem := New()

	dose := mustCreateDose(t, mem, "med-1", "2024-01-15")

	takenTime := time.Date(2024, 1, 15, 8, 12, 0, 0, time.UTC)
	takenStatus := models.DoseStatusTaken
	updated, found, err := mem.UpdateDose(dose.ID, store.DoseUpdate{Status: &takenStatus, TakenTime: &takenTime})
	if err != nil || !found {
		t.Fatalf("UpdateDose() = found %v, err %v", found, err)
	}
	if updated.Status != models.DoseStatusTaken {
		t.Fatalf("UpdateDose() status = %q, want taken", updated.Status)
	}
	if updated.TakenTime == nil || !updated.TakenTime.Equal(takenTime) {
		t.Fatalf("UpdateDose() takenTime = %v, want %v", updated.TakenTime, takenTime)
	}
	if updated.ID != dose.ID || updated.MedicationID != dose.MedicationID {
		t.Fatalf("UpdateDose() changed identity: %#v", updated)
	}
}

func TestSymptomsSortNewestFirstAndFilterByDate(t *testing.T) {
	mem := New()

	current := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	mem.now = func() time.Time {
		current = current.Add(time.Minute)
		return current
	}

	if _, err := mem.CreateSymptom(store.SymptomInput{Description: "headache", Severity: 2, Date: "2024-01-14"}); err != nil {
		t.Fatalf("CreateSymptom() unexpected error: %v", err)
	}
	if _, err := mem.CreateSymptom(store.SymptomInput{Description: "chest pain", Severity: 5, Date: "2024-01-15"}); err != nil {
		t.Fatalf("CreateSymptom() unexpected error: %v", err)
	}
	if _, err := mem.CreateSymptom(store.SymptomInput{Description: "nausea", Severity: 9, Date: "2024-01-15"}); err != nil {
		t.Fatalf("CreateSymptom() unexpected error: %v", err)
	}

	all, err := mem.ListSymptoms("")
	if err != nil || len(all) != 3 {
		t.Fatalf("ListSymptoms(\"\") = %d entries, err %v, want 3", len(all), err)
	}
	if all[0].Description != "nausea" || all[2].Description != "headache" {
		t.Fatalf("ListSymptoms(\"\") order = [%s %s %s], want newest first", all[0].Description, all[1].Description, all[2].Description)
	}
	if all[0].Severity != 5 {
		t.Fatalf("CreateSymptom() severity = %d, want clamped to 5", all[0].Severity)
	}

	day, err := mem.ListSymptoms("2024-01-15")
	if err != nil || len(day) != 2 {
		t.Fatalf("ListSymptoms(2024-01-15) = %d entries, err %v, want 2", len(day), err)
	}
	for _, symptom := range day {
		if symptom.Date != "2024-01-15" {
			t.Fatalf("ListSymptoms(2024-01-15) returned entry for %s", symptom.Date)
		}
	}

	recent, err := mem.ListRecentSymptoms(2)
	if err != nil || len(recent) != 2 {
		t.Fatalf("ListRecentSymptoms(2) = %d entries, err %v, want 2", len(recent), err)
	}
	if recent[0].Description != "nausea" || recent[1].Description != "chest pain" {
		t.Fatalf("ListRecentSymptoms(2) = [%s %s], want [nausea chest pain]", recent[0].Description, recent[1].Description)
	}
}

func TestRecentSymptomsDefaultLimit(t *testing.T) {
	mem := New()

	for i := 0; i < 8; i++ {
		if _, err := mem.CreateSymptom(store.SymptomInput{Description: "entry", Severity: 1, Date: "2024-01-15"}); err != nil {
			t.Fatalf("CreateSymptom() unexpected error: %v", err)
		}
	}

	recent, err := mem.ListRecentSymptoms(0)
	if err != nil {
		t.Fatalf("ListRecentSymptoms(0) unexpected error: %v", err)
	}
	if len(recent) != store.DefaultRecentSymptomLimit {
		t.Fatalf("ListRecentSymptoms(0) = %d entries, want default %d", len(recent), store.DefaultRecentSymptomLimit)
	}
}

func TestSettingsUpsertKeepsSingleton(t *testing.T) {
	mem := New()

	if _, found, err := mem.GetSettings(); found || err != nil {
		t.Fatalf("GetSettings() on empty store = found %v, err %v, want absent", found, err)
	}

	first, err := mem.UpsertSettings(store.SettingsInput{EmergencyContactName: "Alex Doe"})
	if err != nil {
		t.Fatalf("UpsertSettings() unexpected error: %v", err)
	}
	if !first.NotificationsEnabled {
		t.Fatal("UpsertSettings() notificationsEnabled = false, want default true")
	}

	disabled := false
	second, err := mem.UpsertSettings(store.SettingsInput{
		EmergencyContactName: "Sam Roe",
		NotificationsEnabled: &disabled,
	})
	if err != nil {
		t.Fatalf("UpsertSettings() unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("UpsertSettings() changed id %q -> %q, want stable singleton id", first.ID, second.ID)
	}
	if second.EmergencyContactName != "Sam Roe" || second.NotificationsEnabled {
		t.Fatalf("UpsertSettings() = %#v, want second write's values", second)
	}

	stored, found, err := mem.GetSettings()
	if err != nil || !found {
		t.Fatalf("GetSettings() = found %v, err %v", found, err)
	}
	if stored.EmergencyContactName != "Sam Roe" {
		t.Fatalf("GetSettings() = %#v, want latest values", stored)
	}
}

func mustCreateDose(t *testing.T, mem *MemStore, medicationID string, date string) models.MedicationDose {
	t.Helper()

	dose, err := mem.CreateDose(store.DoseInput{
		MedicationID:  medicationID,
		ScheduledTime: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
		Date:          date,
	})
	if err != nil {
		t.Fatalf("CreateDose() unexpected error: %v", err)
	}
	return dose
}
