package applicationsrv

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/pkg/errx"
	"github.com/jobdeck/jobdeck/pkg/fsx"
	"github.com/jobdeck/jobdeck/pkg/kernel"
	"github.com/jobdeck/jobdeck/pkg/logx"
)

// ApplicationService provides business operations for applications
type ApplicationService struct {
	appRepo application.Repository
	fs      fsx.FileSystem
	cache   application.ListingCache
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	appRepo application.Repository,
	fs fsx.FileSystem,
	cache application.ListingCache,
) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
		fs:      fs,
		cache:   cache,
	}
}

// SubmitApplication persists a fully composed submission as a single row
// in NEW status. The caller (the wizard) has already validated fields and
// uploaded the resume; on a failed insert the uploaded file is removed
// best-effort so the bucket does not accumulate orphans.
func (s *ApplicationService) SubmitApplication(ctx context.Context, req application.SubmitApplicationRequest) (*application.Application, error) {
	now := time.Now()
	app := &application.Application{
		ID:          kernel.NewApplicationID(uuid.NewString()),
		JobID:       req.JobID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		LinkedInURL: req.LinkedInURL,
		CVURL:       req.CVURL,
		CVPath:      req.CVPath,
		CVFilename:  req.CVFilename,
		Answers:     req.Answers,
		Status:      application.ApplicationStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if req.CVPath != "" {
			if delErr := s.fs.DeleteFile(ctx, req.CVPath); delErr != nil {
				logx.Warnf("orphaned resume cleanup failed for %s: %v", req.CVPath, delErr)
			}
		}
		return nil, application.ErrSubmissionFailed().WithCause(err)
	}

	s.cache.Invalidate(ctx, req.JobID)

	return app, nil
}

// GetApplicationByID retrieves one application (admin view)
func (s *ApplicationService) GetApplicationByID(ctx context.Context, id kernel.ApplicationID) (*application.ApplicationResponse, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	resp := toApplicationResponse(app)
	return &resp, nil
}

// ListApplications retrieves all applications with pagination
func (s *ApplicationService) ListApplications(ctx context.Context, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	apps, err := s.appRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	return toPaginatedResponse(apps), nil
}

// ListApplicationsByJob retrieves a job's applications through the
// listing cache. Cache misses fall through to the repository and
// populate the cache.
func (s *ApplicationService) ListApplicationsByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	key := listingKey(jobID, pagination)
	if cached, ok := s.cache.GetList(ctx, key); ok {
		return cached, nil
	}

	apps, err := s.appRepo.ListByJobID(ctx, jobID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	resp := toPaginatedResponse(apps)
	s.cache.SetList(ctx, key, resp)
	return resp, nil
}

// ============================================================================
// Review Actions
// ============================================================================

// SetStatus overwrites an application's review status
func (s *ApplicationService) SetStatus(ctx context.Context, id kernel.ApplicationID, status application.ApplicationStatus, reviewer kernel.UserID) (*application.ApplicationResponse, error) {
	return s.review(ctx, id, func(app *application.Application) error {
		return app.SetStatus(status, reviewer)
	})
}

// SetRating overwrites an application's 1-5 rating
func (s *ApplicationService) SetRating(ctx context.Context, id kernel.ApplicationID, rating int, reviewer kernel.UserID) (*application.ApplicationResponse, error) {
	return s.review(ctx, id, func(app *application.Application) error {
		return app.SetRating(rating, reviewer)
	})
}

// SetNotes overwrites an application's free-text notes
func (s *ApplicationService) SetNotes(ctx context.Context, id kernel.ApplicationID, notes string, reviewer kernel.UserID) (*application.ApplicationResponse, error) {
	return s.review(ctx, id, func(app *application.Application) error {
		return app.SetNotes(notes, reviewer)
	})
}

// review loads, mutates and saves an application, then invalidates the
// owning job's cached listings
func (s *ApplicationService) review(ctx context.Context, id kernel.ApplicationID, mutate func(*application.Application) error) (*application.ApplicationResponse, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if err := mutate(app); err != nil {
		return nil, err
	}

	if err := s.appRepo.Update(ctx, id, app); err != nil {
		return nil, errx.Wrap(err, "failed to save review", errx.TypeInternal)
	}

	s.cache.Invalidate(ctx, app.JobID)

	resp := toApplicationResponse(app)
	return &resp, nil
}

// DeleteApplication removes an application and its stored resume
func (s *ApplicationService) DeleteApplication(ctx context.Context, id kernel.ApplicationID) error {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if err := s.appRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete application", errx.TypeInternal)
	}

	if app.CVPath != "" {
		if delErr := s.fs.DeleteFile(ctx, app.CVPath); delErr != nil {
			logx.Warnf("resume cleanup failed for %s: %v", app.CVPath, delErr)
		}
	}

	s.cache.Invalidate(ctx, app.JobID)

	return nil
}

// DownloadResume streams the stored resume of an application. The
// returned filename is the applicant's original upload name.
func (s *ApplicationService) DownloadResume(ctx context.Context, id kernel.ApplicationID) (io.ReadCloser, string, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if app.CVPath == "" {
		return nil, "", application.ErrResumeNotFound().WithDetail("application_id", id.String())
	}

	stream, err := s.fs.ReadFileStream(ctx, app.CVPath)
	if err != nil {
		return nil, "", application.ErrResumeNotFound().WithCause(err)
	}

	return stream, app.CVFilename, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func listingKey(jobID kernel.JobID, pagination kernel.PaginationOptions) string {
	return fmt.Sprintf("applications:job:%s:page:%d:size:%d", jobID.String(), pagination.Page, pagination.PageSize)
}

func toApplicationResponse(a *application.Application) application.ApplicationResponse {
	return application.ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		LinkedInURL: a.LinkedInURL,
		CVURL:       a.CVURL,
		CVFilename:  a.CVFilename,
		Answers:     a.Answers,
		Status:      a.Status,
		Rating:      a.Rating,
		Notes:       a.Notes,
		ReviewedAt:  a.ReviewedAt,
		ReviewedBy:  a.ReviewedBy,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toPaginatedResponse(apps *kernel.Paginated[application.Application]) *application.PaginatedApplicationsResponse {
	responses := make([]application.ApplicationResponse, 0, len(apps.Items))
	for _, a := range apps.Items {
		responses = append(responses, toApplicationResponse(&a))
	}

	return &kernel.Paginated[application.ApplicationResponse]{
		Items: responses,
		Page:  apps.Page,
		Empty: apps.Empty,
	}
}
