package wizardsrv

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/board/application/applicationsrv"
	"github.com/jobdeck/jobdeck/board/job"
	"github.com/jobdeck/jobdeck/board/wizard"
	"github.com/jobdeck/jobdeck/pkg/fsx"
	"github.com/jobdeck/jobdeck/pkg/kernel"
	"github.com/jobdeck/jobdeck/pkg/logx"
)

// WizardService runs applicant wizard sessions: step navigation, field
// capture, resume staging and the final submission choreography.
type WizardService struct {
	sessions wizard.SessionStore
	jobRepo  job.Repository
	fs       fsx.FileSystem
	apps     *applicationsrv.ApplicationService
}

// NewWizardService creates a new instance of the wizard service
func NewWizardService(
	sessions wizard.SessionStore,
	jobRepo job.Repository,
	fs fsx.FileSystem,
	apps *applicationsrv.ApplicationService,
) *WizardService {
	return &WizardService{
		sessions: sessions,
		jobRepo:  jobRepo,
		fs:       fs,
		apps:     apps,
	}
}

// StartWizard opens a session against an open job. Jobs that are not
// open are indistinguishable from missing ones.
func (s *WizardService) StartWizard(ctx context.Context, req wizard.StartWizardRequest) (*wizard.SessionResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", req.JobID.String())
	}

	if !jobEntity.IsOpen() {
		return nil, job.ErrJobNotFound().WithDetail("job_id", req.JobID.String())
	}

	variant := req.Variant
	if variant == "" {
		variant = wizard.VariantInline
	}
	if !variant.IsValid() {
		return nil, wizard.ErrInvalidRequest().WithDetail("variant", variant)
	}

	session := wizard.NewSession(kernel.NewWizardID(uuid.NewString()), jobEntity, variant)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, wizard.ErrInvalidRequest().WithCause(err)
	}

	return s.respond(session), nil
}

// GetSession retrieves a session for the applicant's client
func (s *WizardService) GetSession(ctx context.Context, id kernel.WizardID) (*wizard.SessionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(session), nil
}

// UpdateFields applies entered values to the session. No validation
// runs here; fields are checked when the applicant advances.
func (s *WizardService) UpdateFields(ctx context.Context, id kernel.WizardID, req wizard.PatchFieldsRequest) (*wizard.SessionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		session.Fields.FullName = *req.FullName
	}
	if req.Email != nil {
		session.Fields.Email = *req.Email
	}
	if req.Country != nil {
		session.Fields.Country = kernel.CountryCode(strings.ToUpper(*req.Country))
	}
	if req.LocalPhone != nil {
		session.Fields.LocalPhone = *req.LocalPhone
	}
	if req.LinkedIn != nil {
		session.Fields.LinkedIn = *req.LinkedIn
	}

	for questionID, value := range req.Answers {
		question, ok := session.QuestionByID(questionID)
		if !ok {
			return nil, wizard.ErrInvalidRequest().WithDetail("question_id", questionID.String())
		}
		if !answerMatchesQuestion(value, question.Type) {
			return nil, wizard.ErrAnswerMismatch().
				WithDetail("question_id", questionID.String()).
				WithDetail("expected", question.Type)
		}
		session.Answers[questionID] = value
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, wizard.ErrInvalidRequest().WithCause(err)
	}

	return s.respond(session), nil
}

// AttachResume stages the applicant's resume in the session. The file
// is validated here for early feedback and uploaded only at submission.
func (s *WizardService) AttachResume(ctx context.Context, id kernel.WizardID, file wizard.ResumeFile) (*wizard.SessionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	staged := file
	staged.Size = int64(len(file.Data))
	session.Resume = &staged

	if errs := wizard.ValidateResumeFile(session.Resume); len(errs) > 0 {
		session.Resume = nil
		return nil, wizard.ErrValidationFailed().WithDetail("fields", errs)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, wizard.ErrInvalidRequest().WithCause(err)
	}

	return s.respond(session), nil
}

// Forward advances the session one step after validating the current
// step's fields
func (s *WizardService) Forward(ctx context.Context, id kernel.WizardID) (*wizard.SessionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.Forward(); err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, wizard.ErrInvalidRequest().WithCause(err)
	}

	return s.respond(session), nil
}

// Back moves the session one step backward, keeping all entered values
func (s *WizardService) Back(ctx context.Context, id kernel.WizardID) (*wizard.SessionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Back()

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, wizard.ErrInvalidRequest().WithCause(err)
	}

	return s.respond(session), nil
}

// Submit runs the final submission choreography: full validation,
// resume upload, payload composition and the handler call. Any failure
// leaves the session intact on its final step so the applicant can
// retry without re-entering anything.
func (s *WizardService) Submit(ctx context.Context, id kernel.WizardID) (*wizard.SubmitResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.AtFinalStep() {
		return nil, wizard.ErrInvalidStep().WithDetail("step", session.Step)
	}

	if session.Submitting {
		return nil, wizard.ErrSubmitInFlight()
	}

	if errs := session.ValidateAll(); len(errs) > 0 {
		return nil, wizard.ErrValidationFailed().WithDetail("fields", errs)
	}

	// Mark the submission in flight so a second click cannot produce a
	// duplicate row
	session.Submitting = true
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, wizard.ErrInvalidRequest().WithCause(err)
	}
	defer func() {
		// On any failure path the guard is lifted so the applicant can
		// retry; success deletes the session entirely
		if session.Submitting {
			session.Submitting = false
			if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
				logx.Warnf("failed to release submit guard for session %s: %v", session.ID, saveErr)
			}
		}
	}()

	// Upload under a path namespaced by job and a fresh random id; the
	// original filename survives only as display metadata
	ext := strings.ToLower(filepath.Ext(session.Resume.Filename))
	path := s.fs.Join("applications", session.JobID.String(), uuid.NewString()+ext)
	if err := s.fs.WriteFile(ctx, path, session.Resume.Data); err != nil {
		return nil, wizard.ErrUploadFailed().WithCause(err)
	}

	submission := application.SubmitApplicationRequest{
		JobID:       session.JobID,
		FullName:    kernel.FullName(strings.TrimSpace(session.Fields.FullName)),
		Email:       kernel.Email(session.Fields.Email),
		Phone:       wizard.ComposePhone(session.Fields.Country, wizard.StripPhoneDigits(session.Fields.LocalPhone)),
		LinkedInURL: wizard.NormalizeLinkedIn(session.Fields.LinkedIn),
		CVURL:       kernel.BucketURL(s.fs.PublicURL(path)),
		CVPath:      path,
		CVFilename:  session.Resume.Filename,
		Answers:     session.ComposeAnswers(),
	}

	app, err := s.apps.SubmitApplication(ctx, submission)
	if err != nil {
		return nil, err
	}

	// Success: the session is done and further transitions are
	// impossible; a fresh wizard is required to apply again
	session.Submitting = false
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		logx.Warnf("failed to discard submitted session %s: %v", session.ID, err)
	}

	return &wizard.SubmitResponse{
		Success:       true,
		ApplicationID: app.ID,
		CloseModal:    session.Variant == wizard.VariantModal,
	}, nil
}

// Abandon discards a session without submitting
func (s *WizardService) Abandon(ctx context.Context, id kernel.WizardID) error {
	return s.sessions.Delete(ctx, id)
}

func (s *WizardService) load(ctx context.Context, id kernel.WizardID) (*wizard.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, wizard.ErrSessionNotFound().WithDetail("session_id", id.String())
	}
	return session, nil
}

func (s *WizardService) respond(session *wizard.Session) *wizard.SessionResponse {
	return wizard.ToSessionResponse(session)
}

// answerMatchesQuestion enforces the tagged union: the answer's kind
// must match the question's declared type
func answerMatchesQuestion(value application.AnswerValue, questionType job.QuestionType) bool {
	switch questionType {
	case job.QuestionTypeShortText, job.QuestionTypeLongText:
		return value.Kind == application.AnswerKindString
	case job.QuestionTypeYesNo:
		return value.Kind == application.AnswerKindBool
	case job.QuestionTypeNumber:
		return value.Kind == application.AnswerKindNumber
	}
	return false
}
