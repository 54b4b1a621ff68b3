package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medtrackhq/medtrack/internal/catalog"
)

func (handler *Handler) SearchReference(c *fiber.Ctx) error {
	return c.JSON(catalog.Search(c.Query("q")))
}

func (handler *Handler) ReferenceByName(c *fiber.Ctx) error {
	medication, found := catalog.Lookup(c.Params("name"))
	if !found {
		return notFound(c, "medication not found")
	}
	return c.JSON(medication)
}

func (handler *Handler) ReferenceByCategory(c *fiber.Ctx) error {
	return c.JSON(catalog.ByCategory(c.Params("category")))
}
