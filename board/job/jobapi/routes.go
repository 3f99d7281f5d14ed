package jobapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobdeck/jobdeck/pkg/iam/auth"
)

// RegisterRoutes registers job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/jobs")

	// Public routes - consumed by the job board and the wizard
	api.Get("/open", handlers.ListOpenJobs)
	api.Get("/open/:id", handlers.GetPublicJob)

	// Read routes (require read scope)
	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsRead, auth.ScopeJobsAll),
		handlers.ListJobs,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsRead, auth.ScopeJobsAll),
		handlers.GetJobByID,
	)

	// Write routes (require write scope)
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsWrite, auth.ScopeJobsAll),
		handlers.CreateJob,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsWrite, auth.ScopeJobsAll),
		handlers.UpdateJob,
	)

	// Question schema editor
	api.Post("/:id/questions",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsWrite, auth.ScopeJobsAll),
		handlers.AddQuestion,
	)

	api.Post("/:id/questions/move",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsWrite, auth.ScopeJobsAll),
		handlers.MoveQuestion,
	)

	api.Put("/:id/questions/:questionId",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsWrite, auth.ScopeJobsAll),
		handlers.EditQuestion,
	)

	api.Delete("/:id/questions/:questionId",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsWrite, auth.ScopeJobsAll),
		handlers.RemoveQuestion,
	)

	// Publish/Close routes (require publish scope)
	api.Post("/:id/publish",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsPublish, auth.ScopeJobsAll),
		handlers.PublishJob,
	)

	api.Post("/:id/close",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsPublish, auth.ScopeJobsAll),
		handlers.CloseJob,
	)

	// Delete routes (require delete scope)
	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeJobsDelete, auth.ScopeJobsAll),
		handlers.DeleteJob,
	)
}
