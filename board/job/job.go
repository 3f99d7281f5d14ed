package job

import (
	"time"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// JobStatus represents the status of a job posting
type JobStatus string

const (
	JobStatusDraft  JobStatus = "DRAFT"  // Created but not published
	JobStatusOpen   JobStatus = "OPEN"   // Published and accepting applications
	JobStatusClosed JobStatus = "CLOSED" // No longer accepting applications
)

// QuestionType declares how an answer to a screening question is shaped
type QuestionType string

const (
	QuestionTypeShortText QuestionType = "SHORT_TEXT" // Single-line input
	QuestionTypeLongText  QuestionType = "LONG_TEXT"  // Multi-line input
	QuestionTypeYesNo     QuestionType = "YES_NO"     // Binary choice
	QuestionTypeNumber    QuestionType = "NUMBER"     // Numeric input
)

// IsValid reports whether the type is one of the declared kinds
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeShortText, QuestionTypeLongText, QuestionTypeYesNo, QuestionTypeNumber:
		return true
	}
	return false
}

// MaxQuestions is the cap on screening questions per job
const MaxQuestions = 5

// Question is an administrator-defined screening prompt embedded in a job.
// The list is a snapshot: applications keep their own copies of label and id,
// so later edits never invalidate submitted answers.
type Question struct {
	ID       kernel.QuestionID `json:"id"`
	Label    string            `json:"label"`
	Type     QuestionType      `json:"type"`
	Required bool              `json:"required"`
}

type Job struct {
	ID             kernel.JobID       `db:"id" json:"id"`
	Title          kernel.JobTitle    `db:"title" json:"title"`
	Company        kernel.CompanyName `db:"company" json:"company"`
	Status         JobStatus          `db:"status" json:"status"`
	MaxOpenings    int                `db:"max_openings" json:"max_openings"`
	OpeningsFilled int                `db:"openings_filled" json:"openings_filled"`
	Questions      []Question         `db:"questions" json:"questions,omitempty"`
	PostedBy       kernel.UserID      `db:"posted_by" json:"posted_by"`
	PublishedAt    *time.Time         `db:"published_at" json:"published_at,omitempty"`
	ClosedAt       *time.Time         `db:"closed_at" json:"closed_at,omitempty"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsOpen checks if the job is accepting applications
func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}

// IsDraft checks if the job is in draft status
func (j *Job) IsDraft() bool {
	return j.Status == JobStatusDraft
}

// IsClosed checks if the job is closed
func (j *Job) IsClosed() bool {
	return j.Status == JobStatusClosed
}

// Publish moves a draft job to open
func (j *Job) Publish() error {
	if !j.IsDraft() {
		return ErrCannotPublish().WithDetail("current_status", j.Status)
	}

	now := time.Now()
	j.Status = JobStatusOpen
	j.PublishedAt = &now
	j.UpdatedAt = now
	return nil
}

// Close stops the job from accepting applications
func (j *Job) Close() error {
	if j.IsClosed() {
		return ErrJobAlreadyClosed()
	}

	now := time.Now()
	j.Status = JobStatusClosed
	j.ClosedAt = &now
	j.UpdatedAt = now
	return nil
}

// UpdateDetails updates posting details, leaving blank fields untouched
func (j *Job) UpdateDetails(title kernel.JobTitle, company kernel.CompanyName, maxOpenings *int) {
	if title != "" {
		j.Title = title
	}
	if company != "" {
		j.Company = company
	}
	if maxOpenings != nil && *maxOpenings > 0 {
		j.MaxOpenings = *maxOpenings
	}
	j.UpdatedAt = time.Now()
}

// ============================================================================
// Question Schema Editor
// ============================================================================

// AddQuestion appends a question to the schema.
// Fails once MaxQuestions exist or when the question is malformed.
func (j *Job) AddQuestion(q Question) error {
	if len(j.Questions) >= MaxQuestions {
		return ErrTooManyQuestions().WithDetail("max", MaxQuestions)
	}
	if q.ID.IsEmpty() {
		return ErrInvalidQuestion().WithDetail("field", "id")
	}
	if q.Label == "" {
		return ErrInvalidQuestion().WithDetail("field", "label")
	}
	if !q.Type.IsValid() {
		return ErrInvalidQuestion().WithDetail("field", "type").WithDetail("type", q.Type)
	}
	if j.questionIndex(q.ID) >= 0 {
		return ErrInvalidQuestion().WithDetail("field", "id").WithDetail("reason", "duplicate")
	}

	j.Questions = append(j.Questions, q)
	j.UpdatedAt = time.Now()
	return nil
}

// RemoveQuestion deletes a question by id
func (j *Job) RemoveQuestion(id kernel.QuestionID) error {
	idx := j.questionIndex(id)
	if idx < 0 {
		return ErrQuestionNotFound().WithDetail("question_id", id.String())
	}

	j.Questions = append(j.Questions[:idx], j.Questions[idx+1:]...)
	j.UpdatedAt = time.Now()
	return nil
}

// MoveQuestionUp swaps the question at index with its predecessor.
// No-op at the top of the list or for an out-of-range index.
func (j *Job) MoveQuestionUp(index int) {
	if index <= 0 || index >= len(j.Questions) {
		return
	}
	j.Questions[index-1], j.Questions[index] = j.Questions[index], j.Questions[index-1]
	j.UpdatedAt = time.Now()
}

// MoveQuestionDown swaps the question at index with its successor.
// No-op at the bottom of the list or for an out-of-range index.
func (j *Job) MoveQuestionDown(index int) {
	if index < 0 || index >= len(j.Questions)-1 {
		return
	}
	j.Questions[index], j.Questions[index+1] = j.Questions[index+1], j.Questions[index]
	j.UpdatedAt = time.Now()
}

// EditQuestion updates a question's label, type and required flag
func (j *Job) EditQuestion(id kernel.QuestionID, label string, qType QuestionType, required bool) error {
	idx := j.questionIndex(id)
	if idx < 0 {
		return ErrQuestionNotFound().WithDetail("question_id", id.String())
	}
	if label == "" {
		return ErrInvalidQuestion().WithDetail("field", "label")
	}
	if !qType.IsValid() {
		return ErrInvalidQuestion().WithDetail("field", "type").WithDetail("type", qType)
	}

	j.Questions[idx].Label = label
	j.Questions[idx].Type = qType
	j.Questions[idx].Required = required
	j.UpdatedAt = time.Now()
	return nil
}

// QuestionByID returns the question with the given id, if present
func (j *Job) QuestionByID(id kernel.QuestionID) (Question, bool) {
	idx := j.questionIndex(id)
	if idx < 0 {
		return Question{}, false
	}
	return j.Questions[idx], true
}

func (j *Job) questionIndex(id kernel.QuestionID) int {
	for i, q := range j.Questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}
