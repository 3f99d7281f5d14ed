package jobapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobdeck/jobdeck/board/job"
	"github.com/jobdeck/jobdeck/board/job/jobsrv"
	"github.com/jobdeck/jobdeck/pkg/iam/auth"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListOpenJobs retrieves the public listing of open jobs
// GET /api/jobs/open
func (h *Handlers) ListOpenJobs(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListOpenJobs(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// GetPublicJob retrieves an open job as seen by applicants
// GET /api/jobs/open/:id
func (h *Handlers) GetPublicJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetPublicJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// CreateJob creates a new job posting
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return job.ErrInsufficientPermissions()
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	// Set the poster to the authenticated user
	req.PostedBy = authContext.UserID

	newJob, err := h.service.CreateJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// GetJobByID retrieves a job by ID (admin view)
// GET /api/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	jobResp, err := h.service.GetJobByID(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(jobResp)
}

// ListJobs retrieves all jobs with pagination (admin view)
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListJobs(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// UpdateJob updates posting details
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updatedJob, err := h.service.UpdateJob(c.Context(), jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(updatedJob)
}

// PublishJob publishes a draft job
// POST /api/jobs/:id/publish
func (h *Handlers) PublishJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	publishedJob, err := h.service.PublishJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(publishedJob)
}

// CloseJob closes a job
// POST /api/jobs/:id/close
func (h *Handlers) CloseJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	closedJob, err := h.service.CloseJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(closedJob)
}

// DeleteJob deletes a job
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteJob(c.Context(), jobID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// AddQuestion adds a screening question to a job's schema
// POST /api/jobs/:id/questions
func (h *Handlers) AddQuestion(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	var req job.AddQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updatedJob, err := h.service.AddQuestion(c.Context(), jobID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(updatedJob)
}

// RemoveQuestion deletes a screening question
// DELETE /api/jobs/:id/questions/:questionId
func (h *Handlers) RemoveQuestion(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	questionID := kernel.QuestionID(c.Params("questionId"))
	if jobID == "" || questionID == "" {
		return job.ErrInvalidRequest().WithDetail("id", "missing or empty")
	}

	updatedJob, err := h.service.RemoveQuestion(c.Context(), jobID, questionID)
	if err != nil {
		return err
	}

	return c.JSON(updatedJob)
}

// MoveQuestion reorders a screening question
// POST /api/jobs/:id/questions/move
func (h *Handlers) MoveQuestion(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	var req job.MoveQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updatedJob, err := h.service.MoveQuestion(c.Context(), jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(updatedJob)
}

// EditQuestion updates a screening question
// PUT /api/jobs/:id/questions/:questionId
func (h *Handlers) EditQuestion(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	questionID := kernel.QuestionID(c.Params("questionId"))
	if jobID == "" || questionID == "" {
		return job.ErrInvalidRequest().WithDetail("id", "missing or empty")
	}

	var req job.EditQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updatedJob, err := h.service.EditQuestion(c.Context(), jobID, questionID, req)
	if err != nil {
		return err
	}

	return c.JSON(updatedJob)
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
