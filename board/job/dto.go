package job

import (
	"time"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	Title       kernel.JobTitle    `json:"title" validate:"required"`
	Company     kernel.CompanyName `json:"company" validate:"required"`
	MaxOpenings int                `json:"max_openings"`
	PostedBy    kernel.UserID      `json:"posted_by"`
}

// UpdateJobRequest - DTO for updating an existing job
type UpdateJobRequest struct {
	Title       *kernel.JobTitle    `json:"title,omitempty"`
	Company     *kernel.CompanyName `json:"company,omitempty"`
	MaxOpenings *int                `json:"max_openings,omitempty"`
}

// AddQuestionRequest - DTO for adding a screening question
type AddQuestionRequest struct {
	Label    string       `json:"label" validate:"required"`
	Type     QuestionType `json:"type" validate:"required"`
	Required bool         `json:"required"`
}

// EditQuestionRequest - DTO for editing a screening question
type EditQuestionRequest struct {
	Label    string       `json:"label" validate:"required"`
	Type     QuestionType `json:"type" validate:"required"`
	Required bool         `json:"required"`
}

// MoveQuestionRequest - DTO for reordering a screening question
type MoveQuestionRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"` // "up" or "down"
}

// ListJobsRequest - DTO for listing all jobs
type ListJobsRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// JobResponse - DTO for returning job data
type JobResponse struct {
	ID             kernel.JobID       `json:"id"`
	Title          kernel.JobTitle    `json:"title"`
	Company        kernel.CompanyName `json:"company"`
	Status         JobStatus          `json:"status"`
	MaxOpenings    int                `json:"max_openings"`
	OpeningsFilled int                `json:"openings_filled"`
	Questions      []Question         `json:"questions,omitempty"`
	PostedBy       kernel.UserID      `json:"posted_by"`
	PublishedAt    *time.Time         `json:"published_at,omitempty"`
	ClosedAt       *time.Time         `json:"closed_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// PublicJobResponse - DTO served to applicants; omits admin-only fields
type PublicJobResponse struct {
	ID        kernel.JobID       `json:"id"`
	Title     kernel.JobTitle    `json:"title"`
	Company   kernel.CompanyName `json:"company"`
	Questions []Question         `json:"questions,omitempty"`
}
