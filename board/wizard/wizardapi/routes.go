package wizardapi

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the applicant-facing wizard routes. All of
// them are public; applicants do not authenticate.
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/wizard")

	api.Post("/", handlers.StartWizard)
	api.Get("/:id", handlers.GetSession)
	api.Patch("/:id/fields", handlers.UpdateFields)
	api.Post("/:id/resume", handlers.AttachResume)
	api.Post("/:id/next", handlers.Forward)
	api.Post("/:id/back", handlers.Back)
	api.Post("/:id/submit", handlers.Submit)
	api.Delete("/:id", handlers.Abandon)
}
