package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	medications := api.Group("/medications")
	medications.Get("", handler.ListMedications)
	medications.Post("", handler.CreateMedication)
	medications.Get("/:id", handler.GetMedication)
	medications.Put("/:id", handler.UpdateMedication)
	medications.Delete("/:id", handler.DeleteMedication)

	doses := api.Group("/doses")
	doses.Get("", handler.ListDoses)
	doses.Post("", handler.CreateDose)
	doses.Get("/medication/:id", handler.ListDosesByMedication)
	doses.Put("/:id", handler.UpdateDose)

	symptoms := api.Group("/symptoms")
	symptoms.Get("", handler.ListSymptoms)
	symptoms.Post("", handler.CreateSymptom)

	settings := api.Group("/settings")
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.UpdateSettings)

	api.Post("/generate-schedule", handler.GenerateSchedule)

	reference := api.Group("/medication-database")
	reference.Get("/search", handler.SearchReference)
	reference.Get("/category/:category", handler.ReferenceByCategory)
	reference.Get("/:name", handler.ReferenceByName)
}
