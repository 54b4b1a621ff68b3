package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/medtrackhq/medtrack/internal/api"
	"github.com/medtrackhq/medtrack/internal/config"
	"github.com/medtrackhq/medtrack/internal/db"
	"github.com/medtrackhq/medtrack/internal/scheduler"
	"github.com/medtrackhq/medtrack/internal/services"
	"github.com/medtrackhq/medtrack/internal/store"
	"github.com/medtrackhq/medtrack/internal/store/memstore"
)

func main() {
	cfg := config.Load()

	location := mustLoadLocation(cfg.Timezone)

	backing, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	handler := api.NewHandler(backing, location)

	app := fiber.New(fiber.Config{
		AppName:               "MedTrack",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())

	api.RegisterRoutes(app, handler)

	var dailyJob *scheduler.Scheduler
	if cfg.ScheduleCron {
		scheduleService := services.NewScheduleService(backing, backing, location)
		doseService := services.NewDoseService(backing)
		dailyJob = scheduler.New(scheduleService, doseService, location)
		if err := dailyJob.Start(); err != nil {
			log.Fatalf("scheduler init failed: %v", err)
		}
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		if dailyJob != nil {
			dailyJob.Stop()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("MedTrack listening on http://0.0.0.0:%s (storage: %s, tz: %s)", cfg.Port, cfg.Storage, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.Storage == config.StorageMemory {
		return memstore.New(), nil
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return db.NewStore(database), nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
