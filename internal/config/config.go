package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

type Config struct {
	Port         string
	DBPath       string
	Storage      string
	Timezone     string
	ScheduleCron bool
}

// Load reads configuration from the environment, after loading a .env
// file when one is present. Every setting has a working default.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", "data/medtrack.db"),
		Storage:      getEnv("STORAGE", StorageSQLite),
		Timezone:     getEnv("TZ", "UTC"),
		ScheduleCron: getEnvBool("SCHEDULE_CRON", true),
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value == "1" || value == "true" || value == "TRUE"
}
