package applicationapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/board/application/applicationsrv"
	"github.com/jobdeck/jobdeck/pkg/iam/auth"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// Handlers provides HTTP handlers for the admin review surface
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListApplications retrieves all applications with pagination
// GET /api/applications
func (h *Handlers) ListApplications(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	apps, err := h.service.ListApplications(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// ListApplicationsByJob retrieves one job's applications
// GET /api/jobs/:jobId/applications
func (h *Handlers) ListApplicationsByJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("jobId"))
	if jobID == "" {
		return application.ErrInvalidRequest().WithDetail("job_id", "missing or empty")
	}

	pagination := parsePaginationOptions(c)

	apps, err := h.service.ListApplicationsByJob(c.Context(), jobID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// GetApplicationByID retrieves one application
// GET /api/applications/:id
func (h *Handlers) GetApplicationByID(c *fiber.Ctx) error {
	appID := kernel.ApplicationID(c.Params("id"))
	if appID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetApplicationByID(c.Context(), appID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// SetStatus overwrites an application's review status
// PUT /api/applications/:id/status
func (h *Handlers) SetStatus(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return application.ErrInsufficientPermissions()
	}

	appID := kernel.ApplicationID(c.Params("id"))
	if appID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.SetStatus(c.Context(), appID, req.Status, authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// SetRating overwrites an application's rating
// PUT /api/applications/:id/rating
func (h *Handlers) SetRating(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return application.ErrInsufficientPermissions()
	}

	appID := kernel.ApplicationID(c.Params("id"))
	if appID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.SetRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.SetRating(c.Context(), appID, req.Rating, authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// SetNotes overwrites an application's notes
// PUT /api/applications/:id/notes
func (h *Handlers) SetNotes(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return application.ErrInsufficientPermissions()
	}

	appID := kernel.ApplicationID(c.Params("id"))
	if appID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.SetNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.SetNotes(c.Context(), appID, req.Notes, authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// DeleteApplication removes an application and its resume
// DELETE /api/applications/:id
func (h *Handlers) DeleteApplication(c *fiber.Ctx) error {
	appID := kernel.ApplicationID(c.Params("id"))
	if appID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteApplication(c.Context(), appID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// DownloadResume streams an application's stored resume
// GET /api/applications/:id/resume
func (h *Handlers) DownloadResume(c *fiber.Ctx) error {
	appID := kernel.ApplicationID(c.Params("id"))
	if appID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	stream, filename, err := h.service.DownloadResume(c.Context(), appID)
	if err != nil {
		return err
	}

	c.Attachment(filename)
	return c.SendStream(stream)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	// Ensure valid values
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}
