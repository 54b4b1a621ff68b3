package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/services"
	"github.com/medtrackhq/medtrack/internal/store"
)

func (handler *Handler) ListDoses(c *fiber.Ctx) error {
	date := c.Query("date")
	if date != "" {
		if err := validateCalendarDate(date); err != nil {
			return badRequest(c, err.Error())
		}
	}

	doses, err := handler.store.ListDoses(date)
	if err != nil {
		return serverError(c, "failed to fetch doses")
	}
	return c.JSON(doses)
}

func (handler *Handler) CreateDose(c *fiber.Ctx) error {
	input := doseCreateInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid dose data")
	}
	if input.MedicationID == "" || input.ScheduledTime == "" {
		return badRequest(c, "invalid dose data: missing required field")
	}
	if err := validateCalendarDate(input.Date); err != nil {
		return badRequest(c, err.Error())
	}
	if input.Status != "" && !models.ValidDoseStatus(input.Status) {
		return badRequest(c, "invalid dose status")
	}

	scheduledTime, err := parseTimestamp(input.ScheduledTime)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var takenTime *time.Time
	if input.TakenTime != nil {
		parsed, err := parseTimestamp(*input.TakenTime)
		if err != nil {
			return badRequest(c, err.Error())
		}
		takenTime = &parsed
	}

	// A dose must reference a registered medication, active or not.
	_, found, err := handler.store.GetMedication(input.MedicationID)
	if err != nil {
		return serverError(c, "failed to create dose")
	}
	if !found {
		return badRequest(c, "unknown medication")
	}

	dose, err := handler.store.CreateDose(store.DoseInput{
		MedicationID:  input.MedicationID,
		ScheduledTime: scheduledTime,
		TakenTime:     takenTime,
		Status:        input.Status,
		Date:          input.Date,
	})
	if err != nil {
		return serverError(c, "failed to create dose")
	}
	return c.Status(fiber.StatusCreated).JSON(dose)
}

func (handler *Handler) UpdateDose(c *fiber.Ctx) error {
	input := doseUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid dose data")
	}

	update := store.DoseUpdate{Status: input.Status, Date: input.Date}
	if input.Date != nil {
		if err := validateCalendarDate(*input.Date); err != nil {
			return badRequest(c, err.Error())
		}
	}
	if input.ScheduledTime != nil {
		parsed, err := parseTimestamp(*input.ScheduledTime)
		if err != nil {
			return badRequest(c, err.Error())
		}
		update.ScheduledTime = &parsed
	}
	if input.TakenTime != nil {
		parsed, err := parseTimestamp(*input.TakenTime)
		if err != nil {
			return badRequest(c, err.Error())
		}
		update.TakenTime = &parsed
	}

	dose, found, err := handler.doseService.Update(c.Params("id"), update)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDoseStatus) {
			return badRequest(c, "invalid dose status")
		}
		return serverError(c, "failed to update dose")
	}
	if !found {
		return notFound(c, "dose not found")
	}
	return c.JSON(dose)
}

func (handler *Handler) ListDosesByMedication(c *fiber.Ctx) error {
	doses, err := handler.store.ListDosesByMedication(c.Params("id"))
	if err != nil {
		return serverError(c, "failed to fetch doses")
	}
	return c.JSON(doses)
}
