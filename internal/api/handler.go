package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrackhq/medtrack/internal/services"
	"github.com/medtrackhq/medtrack/internal/store"
)

// Handler carries the dependencies shared by every route. The backing
// store is injected so the same handlers serve both the sqlite-backed
// and the in-memory implementation.
type Handler struct {
	store           store.Store
	scheduleService *services.ScheduleService
	doseService     *services.DoseService
	location        *time.Location
}

func NewHandler(backing store.Store, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		store:           backing,
		scheduleService: services.NewScheduleService(backing, backing, location),
		doseService:     services.NewDoseService(backing),
		location:        location,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
