package wizard

import (
	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/board/job"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// StartWizardRequest opens a new session against an open job
type StartWizardRequest struct {
	JobID   kernel.JobID `json:"job_id" validate:"required"`
	Variant Variant      `json:"variant"`
}

// PatchFieldsRequest updates entered values. Only non-nil fields are
// applied; answers are merged by question id.
type PatchFieldsRequest struct {
	FullName   *string                                       `json:"full_name,omitempty"`
	Email      *string                                       `json:"email,omitempty"`
	Country    *string                                       `json:"country,omitempty"`
	LocalPhone *string                                       `json:"local_phone,omitempty"`
	LinkedIn   *string                                       `json:"linkedin,omitempty"`
	Answers    map[kernel.QuestionID]application.AnswerValue `json:"answers,omitempty"`
}

// SessionResponse is the session as seen by the applicant's client.
// Resume bytes never leave the server; only the filename echoes back.
type SessionResponse struct {
	ID             kernel.WizardID                               `json:"id"`
	JobID          kernel.JobID                                  `json:"job_id"`
	JobTitle       kernel.JobTitle                               `json:"job_title"`
	Company        kernel.CompanyName                            `json:"company"`
	Variant        Variant                                       `json:"variant"`
	Questions      []job.Question                                `json:"questions,omitempty"`
	Step           int                                           `json:"step"`
	StepCount      int                                           `json:"step_count"`
	StepKind       StepKind                                      `json:"step_kind"`
	Fields         Fields                                        `json:"fields"`
	Answers        map[kernel.QuestionID]application.AnswerValue `json:"answers,omitempty"`
	ResumeFilename string                                        `json:"resume_filename,omitempty"`
}

// SubmitResponse reports a successful submission. CloseModal signals
// the modal variant to dismiss itself.
type SubmitResponse struct {
	Success       bool                 `json:"success"`
	ApplicationID kernel.ApplicationID `json:"application_id"`
	CloseModal    bool                 `json:"close_modal"`
}

// ToSessionResponse projects a session for the applicant's client
func ToSessionResponse(s *Session) *SessionResponse {
	resp := &SessionResponse{
		ID:        s.ID,
		JobID:     s.JobID,
		JobTitle:  s.JobTitle,
		Company:   s.Company,
		Variant:   s.Variant,
		Questions: s.Questions,
		Step:      s.Step,
		StepCount: s.StepCount(),
		StepKind:  s.CurrentKind(),
		Fields:    s.Fields,
		Answers:   s.Answers,
	}
	if s.Resume != nil {
		resp.ResumeFilename = s.Resume.Filename
	}
	return resp
}
