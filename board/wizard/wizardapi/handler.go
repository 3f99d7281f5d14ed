package wizardapi

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jobdeck/jobdeck/board/wizard"
	"github.com/jobdeck/jobdeck/board/wizard/wizardsrv"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// Handlers provides the public HTTP surface of the application wizard
type Handlers struct {
	service *wizardsrv.WizardService
}

// NewHandlers creates a new wizard handlers instance
func NewHandlers(service *wizardsrv.WizardService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// StartWizard opens a new session against an open job
// POST /api/wizard
func (h *Handlers) StartWizard(c *fiber.Ctx) error {
	var req wizard.StartWizardRequest
	if err := c.BodyParser(&req); err != nil {
		return wizard.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	session, err := h.service.StartWizard(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSession retrieves a session
// GET /api/wizard/:id
func (h *Handlers) GetSession(c *fiber.Ctx) error {
	sessionID := kernel.WizardID(c.Params("id"))
	if sessionID == "" {
		return wizard.ErrSessionNotFound().WithDetail("id", "missing or empty")
	}

	session, err := h.service.GetSession(c.Context(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// UpdateFields applies entered values to a session
// PATCH /api/wizard/:id/fields
func (h *Handlers) UpdateFields(c *fiber.Ctx) error {
	sessionID := kernel.WizardID(c.Params("id"))
	if sessionID == "" {
		return wizard.ErrSessionNotFound().WithDetail("id", "missing or empty")
	}

	var req wizard.PatchFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return wizard.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	session, err := h.service.UpdateFields(c.Context(), sessionID, req)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// AttachResume stages the applicant's resume file
// POST /api/wizard/:id/resume  (multipart, field "resume")
func (h *Handlers) AttachResume(c *fiber.Ctx) error {
	sessionID := kernel.WizardID(c.Params("id"))
	if sessionID == "" {
		return wizard.ErrSessionNotFound().WithDetail("id", "missing or empty")
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return wizard.ErrValidationFailed().WithDetail("fields", []wizard.FieldError{
			{Field: "resume", Message: "A resume file is required"},
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return wizard.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	defer file.Close()

	// Read one byte past the limit so oversize files fail validation
	// without buffering arbitrarily large uploads
	data, err := io.ReadAll(io.LimitReader(file, wizard.MaxResumeSize+1))
	if err != nil {
		return wizard.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	session, err := h.service.AttachResume(c.Context(), sessionID, wizard.ResumeFile{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// Forward advances a session one step
// POST /api/wizard/:id/next
func (h *Handlers) Forward(c *fiber.Ctx) error {
	sessionID := kernel.WizardID(c.Params("id"))
	if sessionID == "" {
		return wizard.ErrSessionNotFound().WithDetail("id", "missing or empty")
	}

	session, err := h.service.Forward(c.Context(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// Back moves a session one step backward
// POST /api/wizard/:id/back
func (h *Handlers) Back(c *fiber.Ctx) error {
	sessionID := kernel.WizardID(c.Params("id"))
	if sessionID == "" {
		return wizard.ErrSessionNotFound().WithDetail("id", "missing or empty")
	}

	session, err := h.service.Back(c.Context(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// Submit runs the final submission
// POST /api/wizard/:id/submit
func (h *Handlers) Submit(c *fiber.Ctx) error {
	sessionID := kernel.WizardID(c.Params("id"))
	if sessionID == "" {
		return wizard.ErrSessionNotFound().WithDetail("id", "missing or empty")
	}

	result, err := h.service.Submit(c.Context(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// Abandon discards a session without submitting
// DELETE /api/wizard/:id
func (h *Handlers) Abandon(c *fiber.Ctx) error {
	sessionID := kernel.WizardID(c.Params("id"))
	if sessionID == "" {
		return wizard.ErrSessionNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.Abandon(c.Context(), sessionID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
