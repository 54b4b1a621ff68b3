package api

import "github.com/gofiber/fiber/v2"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return apiError(c, fiber.StatusNotFound, message)
}

func badRequest(c *fiber.Ctx, message string) error {
	return apiError(c, fiber.StatusBadRequest, message)
}

func serverError(c *fiber.Ctx, message string) error {
	return apiError(c, fiber.StatusInternalServerError, message)
}
