package jobsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobdeck/jobdeck/board/job"
	"github.com/jobdeck/jobdeck/pkg/errx"
	"github.com/jobdeck/jobdeck/pkg/iam/auth"
	"github.com/jobdeck/jobdeck/pkg/iam/user"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// JobService provides business operations for job postings
type JobService struct {
	jobRepo  job.Repository
	userRepo user.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository, userRepo user.Repository) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// CreateJob creates a new job posting in draft status
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	// Validate that the user posting the job exists
	poster, err := s.userRepo.FindByID(ctx, req.PostedBy)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", req.PostedBy.String())
	}

	if !poster.IsActive() {
		return nil, user.ErrUserSuspended().WithDetail("user_id", req.PostedBy.String())
	}

	if !poster.HasAnyScope(auth.ScopeJobsWrite, auth.ScopeJobsAll, auth.ScopeAll) {
		return nil, job.ErrInsufficientPermissions().WithDetail("required_scope", "jobs:write")
	}

	if req.Title == "" || req.Company == "" {
		return nil, job.ErrInvalidRequest().WithDetail("reason", "title and company are required")
	}

	maxOpenings := req.MaxOpenings
	if maxOpenings <= 0 {
		maxOpenings = 1
	}

	newJob := &job.Job{
		ID:          kernel.NewJobID(uuid.NewString()),
		Title:       req.Title,
		Company:     req.Company,
		Status:      job.JobStatusDraft, // Start as draft
		MaxOpenings: maxOpenings,
		PostedBy:    req.PostedBy,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	return newJob, nil
}

// GetJobByID retrieves a job by ID (admin view)
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	resp := toJobResponse(jobEntity)
	return &resp, nil
}

// GetPublicJob retrieves an open job as seen by applicants.
// Jobs that are not open are indistinguishable from missing ones.
func (s *JobService) GetPublicJob(ctx context.Context, jobID kernel.JobID) (*job.PublicJobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if !jobEntity.IsOpen() {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	return &job.PublicJobResponse{
		ID:        jobEntity.ID,
		Title:     jobEntity.Title,
		Company:   jobEntity.Company,
		Questions: jobEntity.Questions,
	}, nil
}

// ListJobs retrieves all jobs with pagination (admin view)
func (s *JobService) ListJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	return toPaginatedResponse(jobs), nil
}

// ListOpenJobs retrieves only open jobs (the public listing)
func (s *JobService) ListOpenJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListOpen(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list open jobs", errx.TypeInternal)
	}

	return toPaginatedResponse(jobs), nil
}

// UpdateJob updates posting details
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	var title kernel.JobTitle
	if req.Title != nil {
		title = *req.Title
	}
	var company kernel.CompanyName
	if req.Company != nil {
		company = *req.Company
	}
	jobEntity.UpdateDetails(title, company, req.MaxOpenings)

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}

	return jobEntity, nil
}

// PublishJob moves a draft job to open
func (s *JobService) PublishJob(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := jobEntity.Publish(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to publish job", errx.TypeInternal)
	}

	return jobEntity, nil
}

// CloseJob stops a job from accepting applications
func (s *JobService) CloseJob(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := jobEntity.Close(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to close job", errx.TypeInternal)
	}

	return jobEntity, nil
}

// DeleteJob deletes a job without applications
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID) error {
	count, err := s.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		return errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	if count > 0 {
		return job.ErrJobHasApplications().WithDetail("applications", count)
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	return nil
}

// ============================================================================
// Question Schema Editor
// ============================================================================

// AddQuestion appends a screening question to the job's schema
func (s *JobService) AddQuestion(ctx context.Context, jobID kernel.JobID, req job.AddQuestionRequest) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	question := job.Question{
		ID:       kernel.NewQuestionID(uuid.NewString()),
		Label:    req.Label,
		Type:     req.Type,
		Required: req.Required,
	}

	if err := jobEntity.AddQuestion(question); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to save question", errx.TypeInternal)
	}

	return jobEntity, nil
}

// RemoveQuestion deletes a screening question by id
func (s *JobService) RemoveQuestion(ctx context.Context, jobID kernel.JobID, questionID kernel.QuestionID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := jobEntity.RemoveQuestion(questionID); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to remove question", errx.TypeInternal)
	}

	return jobEntity, nil
}

// MoveQuestion reorders a screening question one position up or down.
// Out-of-bounds moves are no-ops, matching the editor contract.
func (s *JobService) MoveQuestion(ctx context.Context, jobID kernel.JobID, req job.MoveQuestionRequest) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	switch req.Direction {
	case "up":
		jobEntity.MoveQuestionUp(req.Index)
	case "down":
		jobEntity.MoveQuestionDown(req.Index)
	default:
		return nil, job.ErrInvalidRequest().WithDetail("direction", req.Direction)
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to reorder questions", errx.TypeInternal)
	}

	return jobEntity, nil
}

// EditQuestion updates a screening question's label, type and required flag
func (s *JobService) EditQuestion(ctx context.Context, jobID kernel.JobID, questionID kernel.QuestionID, req job.EditQuestionRequest) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := jobEntity.EditQuestion(questionID, req.Label, req.Type, req.Required); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to edit question", errx.TypeInternal)
	}

	return jobEntity, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func toJobResponse(j *job.Job) job.JobResponse {
	return job.JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Company:        j.Company,
		Status:         j.Status,
		MaxOpenings:    j.MaxOpenings,
		OpeningsFilled: j.OpeningsFilled,
		Questions:      j.Questions,
		PostedBy:       j.PostedBy,
		PublishedAt:    j.PublishedAt,
		ClosedAt:       j.ClosedAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func toPaginatedResponse(jobs *kernel.Paginated[job.Job]) *job.PaginatedJobsResponse {
	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for _, j := range jobs.Items {
		responses = append(responses, toJobResponse(&j))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  jobs.Page,
		Empty: jobs.Empty,
	}
}
