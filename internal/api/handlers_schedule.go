package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrackhq/medtrack/internal/services"
)

func (handler *Handler) GenerateSchedule(c *fiber.Ctx) error {
	input := generateScheduleInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid schedule request")
	}
	if err := validateCalendarDate(input.Date); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := handler.scheduleService.GenerateForDate(input.Date)
	if err != nil {
		if errors.Is(err, services.ErrInvalidScheduleDate) {
			return badRequest(c, "invalid schedule date")
		}
		return serverError(c, "failed to generate schedule")
	}

	return c.JSON(fiber.Map{
		"message":      "Schedule generated",
		"dosesCreated": created,
	})
}
