package application

import (
	"time"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// ApplicationStatus represents the review status of an application
type ApplicationStatus string

const (
	ApplicationStatusNew      ApplicationStatus = "NEW"      // Initial submission
	ApplicationStatusReviewed ApplicationStatus = "REVIEWED" // Seen by an administrator
	ApplicationStatusHired    ApplicationStatus = "HIRED"    // Accepted
	ApplicationStatusRejected ApplicationStatus = "REJECTED" // Rejected
)

// IsValid reports whether the status is one of the enumerated values
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusReviewed, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

// Rating bounds for admin triage
const (
	MinRating = 1
	MaxRating = 5
)

// Application is one applicant's submission against one job.
// Identity, contact, answers and the resume reference are immutable after
// submission; status, rating and notes are mutated by administrators.
type Application struct {
	ID          kernel.ApplicationID `db:"id" json:"id"`
	JobID       kernel.JobID         `db:"job_id" json:"job_id"`
	FullName    kernel.FullName      `db:"full_name" json:"full_name"`
	Email       kernel.Email         `db:"email" json:"email"`
	Phone       kernel.PhoneNumber   `db:"phone" json:"phone"`
	LinkedInURL kernel.LinkedInURL   `db:"linkedin_url" json:"linkedin_url"`
	CVURL       kernel.BucketURL     `db:"cv_url" json:"cv_url"`
	CVPath      string               `db:"cv_path" json:"-"`
	CVFilename  string               `db:"cv_filename" json:"cv_filename"`
	Answers     []Answer             `db:"answers" json:"answers,omitempty"`
	Status      ApplicationStatus    `db:"status" json:"status"`
	Rating      *int                 `db:"rating" json:"rating,omitempty"`
	Notes       *string              `db:"notes" json:"notes,omitempty"`
	ReviewedAt  *time.Time           `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy  *kernel.UserID       `db:"reviewed_by" json:"reviewed_by,omitempty"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsNew checks if the application has not been triaged yet
func (a *Application) IsNew() bool {
	return a.Status == ApplicationStatusNew
}

// SetStatus overwrites the review status and stamps the reviewer.
// Any enumerated status may be set from any other; the operation is
// idempotent.
func (a *Application) SetStatus(newStatus ApplicationStatus, reviewer kernel.UserID) error {
	if !newStatus.IsValid() {
		return ErrInvalidStatus().WithDetail("status", newStatus)
	}

	now := time.Now()
	a.Status = newStatus
	a.ReviewedBy = &reviewer
	a.ReviewedAt = &now
	a.UpdatedAt = now
	return nil
}

// SetRating overwrites the 1-5 rating
func (a *Application) SetRating(rating int, reviewer kernel.UserID) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating().WithDetail("rating", rating)
	}

	now := time.Now()
	a.Rating = &rating
	a.ReviewedBy = &reviewer
	a.ReviewedAt = &now
	a.UpdatedAt = now
	return nil
}

// SetNotes overwrites the free-text notes; no history is kept
func (a *Application) SetNotes(notes string, reviewer kernel.UserID) error {
	now := time.Now()
	a.Notes = &notes
	a.ReviewedBy = &reviewer
	a.ReviewedAt = &now
	a.UpdatedAt = now
	return nil
}
