package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medtrackhq/medtrack/internal/store"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, found, err := handler.store.GetSettings()
	if err != nil {
		return serverError(c, "failed to fetch settings")
	}
	if !found {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	input := settingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid settings data")
	}

	settings, err := handler.store.UpsertSettings(store.SettingsInput{
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		DoctorName:            input.DoctorName,
		DoctorPhone:           input.DoctorPhone,
		NotificationsEnabled:  input.NotificationsEnabled,
	})
	if err != nil {
		return serverError(c, "failed to update settings")
	}
	return c.JSON(settings)
}
