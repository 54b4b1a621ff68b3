package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrackhq/medtrack/internal/store"
)

func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	if c.Query("recent") == "true" {
		limit := c.QueryInt("limit", store.DefaultRecentSymptomLimit)
		symptoms, err := handler.store.ListRecentSymptoms(limit)
		if err != nil {
			return serverError(c, "failed to fetch symptoms")
		}
		return c.JSON(symptoms)
	}

	date := c.Query("date")
	if date != "" {
		if err := validateCalendarDate(date); err != nil {
			return badRequest(c, err.Error())
		}
	}

	symptoms, err := handler.store.ListSymptoms(date)
	if err != nil {
		return serverError(c, "failed to fetch symptoms")
	}
	return c.JSON(symptoms)
}

func (handler *Handler) CreateSymptom(c *fiber.Ctx) error {
	input := symptomCreateInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid symptom data")
	}
	if strings.TrimSpace(input.Description) == "" {
		return badRequest(c, "invalid symptom data: missing required field")
	}
	if err := validateCalendarDate(input.Date); err != nil {
		return badRequest(c, err.Error())
	}

	symptom, err := handler.store.CreateSymptom(store.SymptomInput{
		Description: input.Description,
		Severity:    input.Severity,
		Date:        input.Date,
	})
	if err != nil {
		return serverError(c, "failed to create symptom")
	}
	return c.Status(fiber.StatusCreated).JSON(symptom)
}
