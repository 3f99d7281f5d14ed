package wizard

import (
	"net/http"

	"github.com/jobdeck/jobdeck/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("WIZARD")

// Error codes
var (
	CodeSessionNotFound  = ErrRegistry.Register("SESSION_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application session not found or expired")
	CodeValidationFailed = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Some fields need attention")
	CodeInvalidStep      = ErrRegistry.Register("INVALID_STEP", errx.TypeBusiness, http.StatusConflict, "Action not available at this step")
	CodeSubmitInFlight   = ErrRegistry.Register("SUBMIT_IN_FLIGHT", errx.TypeConflict, http.StatusConflict, "Your application is already being submitted")
	CodeUploadFailed     = ErrRegistry.Register("UPLOAD_FAILED", errx.TypeExternal, http.StatusBadGateway, "Could not upload your resume, please try again")
	CodeAnswerMismatch   = ErrRegistry.Register("ANSWER_MISMATCH", errx.TypeValidation, http.StatusBadRequest, "Answer does not match the question type")
	CodeInvalidRequest   = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrSessionNotFound() *errx.Error {
	return ErrRegistry.New(CodeSessionNotFound)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}

func ErrInvalidStep() *errx.Error {
	return ErrRegistry.New(CodeInvalidStep)
}

func ErrSubmitInFlight() *errx.Error {
	return ErrRegistry.New(CodeSubmitInFlight)
}

func ErrUploadFailed() *errx.Error {
	return ErrRegistry.New(CodeUploadFailed)
}

func ErrAnswerMismatch() *errx.Error {
	return ErrRegistry.New(CodeAnswerMismatch)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
