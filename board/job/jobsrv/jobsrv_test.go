package jobsrv

import (
	"context"
	"errors"
	"testing"

	"github.com/jobdeck/jobdeck/board/job"
	"github.com/jobdeck/jobdeck/board/job/jobinfra"
	"github.com/jobdeck/jobdeck/pkg/errx"
	"github.com/jobdeck/jobdeck/pkg/iam/auth"
	"github.com/jobdeck/jobdeck/pkg/iam/user"
	"github.com/jobdeck/jobdeck/pkg/iam/user/userinfra"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

func newService(t *testing.T) (*JobService, *jobinfra.MemoryJobRepository) {
	t.Helper()

	jobRepo := jobinfra.NewMemoryJobRepository()
	userRepo := userinfra.NewMemoryUserRepository()
	if err := userRepo.Create(context.Background(), &user.User{
		ID:     "admin-1",
		Email:  "admin@example.com",
		Scopes: []string{auth.ScopeJobsAll},
		Active: true,
	}); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	if err := userRepo.Create(context.Background(), &user.User{
		ID:     "viewer-1",
		Email:  "viewer@example.com",
		Scopes: []string{auth.ScopeJobsRead},
		Active: true,
	}); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	return NewJobService(jobRepo, userRepo), jobRepo
}

func createRequest(postedBy string) job.CreateJobRequest {
	return job.CreateJobRequest{
		Title:    "Backend Engineer",
		Company:  "Acme",
		PostedBy: kernel.UserID(postedBy),
	}
}

func TestCreateJobStartsAsDraft(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.CreateJob(context.Background(), createRequest("admin-1"))
	if err != nil {
		t.Fatalf("creating: %v", err)
	}
	if created.Status != job.JobStatusDraft {
		t.Fatalf("status = %s, want DRAFT", created.Status)
	}
	if created.MaxOpenings != 1 {
		t.Fatalf("max openings = %d, want default 1", created.MaxOpenings)
	}
	if created.ID.IsEmpty() {
		t.Fatal("no id generated")
	}
}

func TestCreateJobRequiresWriteScope(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateJob(context.Background(), createRequest("viewer-1"))
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != "JOB_INSUFFICIENT_PERMISSIONS" {
		t.Fatalf("want permission error, got %v", err)
	}
}

func TestPublishThenCloseLifecycle(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, _ := svc.CreateJob(ctx, createRequest("admin-1"))

	published, err := svc.PublishJob(ctx, created.ID)
	if err != nil {
		t.Fatalf("publishing: %v", err)
	}
	if !published.IsOpen() {
		t.Fatalf("status = %s, want OPEN", published.Status)
	}

	// Public view is available while open
	public, err := svc.GetPublicJob(ctx, created.ID)
	if err != nil {
		t.Fatalf("public view: %v", err)
	}
	if public.Title != created.Title {
		t.Fatalf("public title = %s", public.Title)
	}

	closed, err := svc.CloseJob(ctx, created.ID)
	if err != nil {
		t.Fatalf("closing: %v", err)
	}
	if !closed.IsClosed() {
		t.Fatalf("status = %s, want CLOSED", closed.Status)
	}

	// Closed jobs disappear from the public surface
	_, err = svc.GetPublicJob(ctx, created.ID)
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != "JOB_NOT_FOUND" {
		t.Fatalf("closed job should look missing publicly, got %v", err)
	}
}

func TestDraftJobHiddenFromPublic(t *testing.T) {
	svc, _ := newService(t)

	created, _ := svc.CreateJob(context.Background(), createRequest("admin-1"))

	_, err := svc.GetPublicJob(context.Background(), created.ID)
	if err == nil {
		t.Fatal("draft job should not be publicly visible")
	}
}

func TestDeleteJobBlockedByApplications(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	created, _ := svc.CreateJob(ctx, createRequest("admin-1"))
	repo.ApplicationCounts[created.ID] = 3

	err := svc.DeleteJob(ctx, created.ID)
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != "JOB_HAS_APPLICATIONS" {
		t.Fatalf("want JOB_HAS_APPLICATIONS, got %v", err)
	}

	repo.ApplicationCounts[created.ID] = 0
	if err := svc.DeleteJob(ctx, created.ID); err != nil {
		t.Fatalf("deleting without applications: %v", err)
	}
}

func TestQuestionEditorThroughService(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, _ := svc.CreateJob(ctx, createRequest("admin-1"))

	withQ, err := svc.AddQuestion(ctx, created.ID, job.AddQuestionRequest{
		Label:    "Why us?",
		Type:     job.QuestionTypeShortText,
		Required: true,
	})
	if err != nil {
		t.Fatalf("adding question: %v", err)
	}
	if len(withQ.Questions) != 1 {
		t.Fatalf("question count = %d", len(withQ.Questions))
	}
	qID := withQ.Questions[0].ID
	if qID.IsEmpty() {
		t.Fatal("no question id generated")
	}

	_, err = svc.MoveQuestion(ctx, created.ID, job.MoveQuestionRequest{Index: 0, Direction: "sideways"})
	if err == nil {
		t.Fatal("unknown direction should be rejected")
	}

	edited, err := svc.EditQuestion(ctx, created.ID, qID, job.EditQuestionRequest{
		Label:    "Why Acme?",
		Type:     job.QuestionTypeLongText,
		Required: false,
	})
	if err != nil {
		t.Fatalf("editing question: %v", err)
	}
	if edited.Questions[0].Label != "Why Acme?" || edited.Questions[0].Type != job.QuestionTypeLongText {
		t.Fatalf("edited question: %+v", edited.Questions[0])
	}

	removed, err := svc.RemoveQuestion(ctx, created.ID, qID)
	if err != nil {
		t.Fatalf("removing question: %v", err)
	}
	if len(removed.Questions) != 0 {
		t.Fatalf("question count after remove = %d", len(removed.Questions))
	}
}
