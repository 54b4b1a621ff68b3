package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medtrackhq/medtrack/internal/store"
)

func (handler *Handler) ListMedications(c *fiber.Ctx) error {
	medications, err := handler.store.ListMedications()
	if err != nil {
		return serverError(c, "failed to fetch medications")
	}
	return c.JSON(medications)
}

func (handler *Handler) CreateMedication(c *fiber.Ctx) error {
	input := medicationCreateInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid medication data")
	}
	if err := validateMedicationCreate(input); err != nil {
		return badRequest(c, "invalid medication data: "+err.Error())
	}

	medication, err := handler.store.CreateMedication(store.MedicationInput{
		Name:                input.Name,
		Dosage:              input.Dosage,
		Frequency:           input.Frequency,
		Times:               input.Times,
		RequiresFood:        input.RequiresFood,
		EmptyStomach:        input.EmptyStomach,
		FoodReminderMinutes: input.FoodReminderMinutes,
	})
	if err != nil {
		return serverError(c, "failed to create medication")
	}
	return c.Status(fiber.StatusCreated).JSON(medication)
}

func (handler *Handler) GetMedication(c *fiber.Ctx) error {
	medication, found, err := handler.store.GetMedication(c.Params("id"))
	if err != nil {
		return serverError(c, "failed to fetch medication")
	}
	if !found {
		return notFound(c, "medication not found")
	}
	return c.JSON(medication)
}

func (handler *Handler) UpdateMedication(c *fiber.Ctx) error {
	input := medicationUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid medication data")
	}
	if err := validateMedicationUpdate(input); err != nil {
		return badRequest(c, "invalid medication data: "+err.Error())
	}

	medication, found, err := handler.store.UpdateMedication(c.Params("id"), store.MedicationUpdate{
		Name:                input.Name,
		Dosage:              input.Dosage,
		Frequency:           input.Frequency,
		Times:               input.Times,
		RequiresFood:        input.RequiresFood,
		EmptyStomach:        input.EmptyStomach,
		FoodReminderMinutes: input.FoodReminderMinutes,
		IsActive:            input.IsActive,
	})
	if err != nil {
		return serverError(c, "failed to update medication")
	}
	if !found {
		return notFound(c, "medication not found")
	}
	return c.JSON(medication)
}

func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	deleted, err := handler.store.DeleteMedication(c.Params("id"))
	if err != nil {
		return serverError(c, "failed to delete medication")
	}
	if !deleted {
		return notFound(c, "medication not found")
	}
	return c.JSON(fiber.Map{"message": "medication deleted"})
}
