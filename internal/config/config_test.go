package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "STORAGE", "SCHEDULE_CRON"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != "data/medtrack.db" {
		t.Fatalf("DBPath = %q, want data/medtrack.db", cfg.DBPath)
	}
	if cfg.Storage != StorageSQLite {
		t.Fatalf("Storage = %q, want sqlite", cfg.Storage)
	}
	if !cfg.ScheduleCron {
		t.Fatal("ScheduleCron = false, want default true")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE", StorageMemory)
	t.Setenv("SCHEDULE_CRON", "false")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Fatalf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.Storage != StorageMemory {
		t.Fatalf("Storage = %q, want memory", cfg.Storage)
	}
	if cfg.ScheduleCron {
		t.Fatal("ScheduleCron = true, want false")
	}
}
