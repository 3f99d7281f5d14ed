package application

import (
	"time"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// SubmitApplicationRequest - the composed payload produced by the wizard
type SubmitApplicationRequest struct {
	JobID       kernel.JobID       `json:"job_id" validate:"required"`
	FullName    kernel.FullName    `json:"full_name" validate:"required"`
	Email       kernel.Email       `json:"email" validate:"required"`
	Phone       kernel.PhoneNumber `json:"phone" validate:"required"`
	LinkedInURL kernel.LinkedInURL `json:"linkedin_url" validate:"required"`
	CVURL       kernel.BucketURL   `json:"cv_url" validate:"required"`
	CVPath      string             `json:"cv_path" validate:"required"`
	CVFilename  string             `json:"cv_filename" validate:"required"`
	Answers     []Answer           `json:"answers,omitempty"`
}

// SetStatusRequest - DTO for the status review action
type SetStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required"`
}

// SetRatingRequest - DTO for the rating review action
type SetRatingRequest struct {
	Rating int `json:"rating" validate:"required"`
}

// SetNotesRequest - DTO for the notes review action
type SetNotesRequest struct {
	Notes string `json:"notes"`
}

// Response type alias for paginated applications
type PaginatedApplicationsResponse = kernel.Paginated[ApplicationResponse]

// ApplicationResponse - DTO for returning application data
type ApplicationResponse struct {
	ID          kernel.ApplicationID `json:"id"`
	JobID       kernel.JobID         `json:"job_id"`
	FullName    kernel.FullName      `json:"full_name"`
	Email       kernel.Email         `json:"email"`
	Phone       kernel.PhoneNumber   `json:"phone"`
	LinkedInURL kernel.LinkedInURL   `json:"linkedin_url"`
	CVURL       kernel.BucketURL     `json:"cv_url"`
	CVFilename  string               `json:"cv_filename"`
	Answers     []Answer             `json:"answers,omitempty"`
	Status      ApplicationStatus    `json:"status"`
	Rating      *int                 `json:"rating,omitempty"`
	Notes       *string              `json:"notes,omitempty"`
	ReviewedAt  *time.Time           `json:"reviewed_at,omitempty"`
	ReviewedBy  *kernel.UserID       `json:"reviewed_by,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
