package job

import (
	"net/http"

	"github.com/jobdeck/jobdeck/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound             = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeJobAlreadyExists        = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Job already exists")
	CodeJobAlreadyClosed        = ErrRegistry.Register("ALREADY_CLOSED", errx.TypeBusiness, http.StatusConflict, "Job is already closed")
	CodeCannotPublish           = ErrRegistry.Register("CANNOT_PUBLISH", errx.TypeBusiness, http.StatusBadRequest, "Job cannot be published in current state")
	CodeJobHasApplications      = ErrRegistry.Register("HAS_APPLICATIONS", errx.TypeBusiness, http.StatusConflict, "Cannot delete job with applications")
	CodeTooManyQuestions        = ErrRegistry.Register("TOO_MANY_QUESTIONS", errx.TypeBusiness, http.StatusBadRequest, "Jobs allow at most 5 screening questions")
	CodeQuestionNotFound        = ErrRegistry.Register("QUESTION_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Question not found")
	CodeInvalidQuestion         = ErrRegistry.Register("INVALID_QUESTION", errx.TypeValidation, http.StatusBadRequest, "Invalid question definition")
	CodeInvalidRequest          = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeInsufficientPermissions = ErrRegistry.Register("INSUFFICIENT_PERMISSIONS", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrJobAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyExists)
}

func ErrJobAlreadyClosed() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyClosed)
}

func ErrCannotPublish() *errx.Error {
	return ErrRegistry.New(CodeCannotPublish)
}

func ErrJobHasApplications() *errx.Error {
	return ErrRegistry.New(CodeJobHasApplications)
}

func ErrTooManyQuestions() *errx.Error {
	return ErrRegistry.New(CodeTooManyQuestions)
}

func ErrQuestionNotFound() *errx.Error {
	return ErrRegistry.New(CodeQuestionNotFound)
}

func ErrInvalidQuestion() *errx.Error {
	return ErrRegistry.New(CodeInvalidQuestion)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrInsufficientPermissions() *errx.Error {
	return ErrRegistry.New(CodeInsufficientPermissions)
}
