package wizard

import (
	"time"

	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/board/job"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// Variant selects how the wizard is presented to the applicant
type Variant string

const (
	VariantInline Variant = "INLINE" // embedded panel on the job page
	VariantModal  Variant = "MODAL"  // overlay, closes itself on success
)

// IsValid reports whether the variant is one of the enumerated values
func (v Variant) IsValid() bool {
	return v == VariantInline || v == VariantModal
}

// DefaultCountry preselects the phone country for new sessions
const DefaultCountry = kernel.CountryPE

// Step kinds, in wizard order. The questions step is skipped entirely
// for jobs without screening questions.
type StepKind string

const (
	StepIdentity  StepKind = "IDENTITY"
	StepContact   StepKind = "CONTACT"
	StepQuestions StepKind = "QUESTIONS"
	StepResume    StepKind = "RESUME"
)

// Fields holds every value the applicant has entered so far. Values
// persist across step navigation for the lifetime of the session.
type Fields struct {
	FullName   string             `json:"full_name"`
	Email      string             `json:"email"`
	Country    kernel.CountryCode `json:"country"`
	LocalPhone string             `json:"local_phone"`
	LinkedIn   string             `json:"linkedin"`
}

// ResumeFile is the applicant's selected resume, held in the session
// until submission uploads it to durable storage.
type ResumeFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Data        []byte `json:"data"`
}

// Session is one applicant's in-progress wizard run. It snapshots the
// job's question schema at start time so later edits by administrators
// cannot shift steps under the applicant.
type Session struct {
	ID        kernel.WizardID    `json:"id"`
	JobID     kernel.JobID       `json:"job_id"`
	JobTitle  kernel.JobTitle    `json:"job_title"`
	Company   kernel.CompanyName `json:"company"`
	Variant   Variant            `json:"variant"`
	Questions []job.Question     `json:"questions"`

	Step    int                                           `json:"step"`
	Fields  Fields                                        `json:"fields"`
	Answers map[kernel.QuestionID]application.AnswerValue `json:"answers"`
	Resume  *ResumeFile                                   `json:"resume,omitempty"`

	// Submitting guards against double-submits while a submission is
	// in flight
	Submitting bool `json:"submitting"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession starts a wizard at step 1 against a snapshot of the job
func NewSession(id kernel.WizardID, j *job.Job, variant Variant) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		JobID:     j.ID,
		JobTitle:  j.Title,
		Company:   j.Company,
		Variant:   variant,
		Questions: j.Questions,
		Step:      1,
		Fields:    Fields{Country: DefaultCountry},
		Answers:   make(map[kernel.QuestionID]application.AnswerValue),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasQuestionsStep reports whether the job's schema adds a questions step
func (s *Session) HasQuestionsStep() bool {
	return len(s.Questions) > 0
}

// StepCount is 3 for jobs without questions, 4 otherwise
func (s *Session) StepCount() int {
	if s.HasQuestionsStep() {
		return 4
	}
	return 3
}

// KindOf maps a step number to its kind for this session's sequence
func (s *Session) KindOf(step int) StepKind {
	if s.HasQuestionsStep() {
		switch step {
		case 1:
			return StepIdentity
		case 2:
			return StepContact
		case 3:
			return StepQuestions
		default:
			return StepResume
		}
	}
	switch step {
	case 1:
		return StepIdentity
	case 2:
		return StepContact
	default:
		return StepResume
	}
}

// CurrentKind is the kind of the session's current step
func (s *Session) CurrentKind() StepKind {
	return s.KindOf(s.Step)
}

// AtFinalStep reports whether submit is available
func (s *Session) AtFinalStep() bool {
	return s.Step == s.StepCount()
}

// Forward validates the current step's fields and advances one step.
// A validation failure leaves the step unchanged and every entered
// value intact.
func (s *Session) Forward() error {
	if s.AtFinalStep() {
		return ErrInvalidStep().WithDetail("step", s.Step)
	}

	if errs := s.validateStep(s.CurrentKind()); len(errs) > 0 {
		return ErrValidationFailed().WithDetail("fields", errs)
	}

	s.Step++
	s.UpdatedAt = time.Now()
	return nil
}

// Back moves one step backward without validation. Going back from
// step 1 is a no-op.
func (s *Session) Back() {
	if s.Step > 1 {
		s.Step--
		s.UpdatedAt = time.Now()
	}
}

// QuestionByID finds a snapshot question by id
func (s *Session) QuestionByID(id kernel.QuestionID) (*job.Question, bool) {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i], true
		}
	}
	return nil, false
}

// ComposeAnswers maps every snapshot question, in schema order, to the
// captured answer, defaulting unanswered ones to the empty-string
// sentinel. The result's length always equals the question count.
func (s *Session) ComposeAnswers() []application.Answer {
	if len(s.Questions) == 0 {
		return nil
	}

	answers := make([]application.Answer, 0, len(s.Questions))
	for _, q := range s.Questions {
		value, ok := s.Answers[q.ID]
		if !ok {
			value = application.EmptyAnswer()
		}
		answers = append(answers, application.Answer{
			QuestionID:    q.ID,
			QuestionLabel: q.Label,
			Value:         value,
		})
	}
	return answers
}
