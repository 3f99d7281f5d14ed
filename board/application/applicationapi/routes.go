package applicationapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobdeck/jobdeck/pkg/iam/auth"
)

// RegisterRoutes registers the admin review routes. Submission has no
// route here; applications enter through the wizard.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/applications")

	// Read routes (require read scope)
	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeApplicationsRead, auth.ScopeApplicationsAll),
		handlers.ListApplications,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeApplicationsRead, auth.ScopeApplicationsAll),
		handlers.GetApplicationByID,
	)

	api.Get("/:id/resume",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeApplicationsRead, auth.ScopeApplicationsAll),
		handlers.DownloadResume,
	)

	// Review routes (require review scope)
	api.Put("/:id/status",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeApplicationsReview, auth.ScopeApplicationsAll),
		handlers.SetStatus,
	)

	api.Put("/:id/rating",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeApplicationsReview, auth.ScopeApplicationsAll),
		handlers.SetRating,
	)

	api.Put("/:id/notes",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeApplicationsReview, auth.ScopeApplicationsAll),
		handlers.SetNotes,
	)

	// Delete routes (require delete scope)
	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeApplicationsDelete, auth.ScopeApplicationsAll),
		handlers.DeleteApplication,
	)

	// Per-job listing lives under the jobs prefix
	jobs := app.Group("/api/jobs")
	jobs.Get("/:jobId/applications",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeApplicationsRead, auth.ScopeApplicationsAll),
		handlers.ListApplicationsByJob,
	)
}
