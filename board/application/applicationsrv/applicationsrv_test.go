package applicationsrv

import (
	"context"
	"errors"
	"testing"

	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/board/application/applicationinfra"
	"github.com/jobdeck/jobdeck/pkg/fsx/fsxmem"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

type fixture struct {
	svc   *ApplicationService
	repo  *applicationinfra.MemoryApplicationRepository
	cache *applicationinfra.MemoryListingCache
	fs    *fsxmem.MemoryFileSystem
}

func newFixture() *fixture {
	repo := applicationinfra.NewMemoryApplicationRepository()
	cache := applicationinfra.NewMemoryListingCache()
	fs := fsxmem.New()
	return &fixture{
		svc:   NewApplicationService(repo, fs, cache),
		repo:  repo,
		cache: cache,
		fs:    fs,
	}
}

func submitRequest() application.SubmitApplicationRequest {
	return application.SubmitApplicationRequest{
		JobID:       kernel.JobID("job-1"),
		FullName:    kernel.FullName("Jane Doe"),
		Email:       kernel.Email("jane@example.com"),
		Phone:       kernel.PhoneNumber("+51 987654321"),
		LinkedInURL: kernel.LinkedInURL("https://linkedin.com/in/jdoe"),
		CVURL:       kernel.BucketURL("https://files.test/applications/job-1/abc.pdf"),
		CVPath:      "applications/job-1/abc.pdf",
		CVFilename:  "jane-cv.pdf",
	}
}

func TestSubmitApplicationInsertsNewRow(t *testing.T) {
	f := newFixture()

	app, err := f.svc.SubmitApplication(context.Background(), submitRequest())
	if err != nil {
		t.Fatalf("submitting: %v", err)
	}
	if app.Status != application.ApplicationStatusNew {
		t.Fatalf("status = %s, want NEW", app.Status)
	}
	if app.Rating != nil || app.Notes != nil || app.ReviewedAt != nil || app.ReviewedBy != nil {
		t.Fatal("review fields must start at their defaults")
	}

	stored, err := f.repo.GetByID(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("row not persisted: %v", err)
	}
	if stored.CVFilename != "jane-cv.pdf" {
		t.Fatalf("cv filename = %q", stored.CVFilename)
	}
}

func TestSubmitFailureCleansUpUpload(t *testing.T) {
	f := newFixture()

	req := submitRequest()
	f.fs.WriteFile(context.Background(), req.CVPath, []byte("%PDF-"))
	f.repo.FailCreate = errors.New("deadlock detected")

	if _, err := f.svc.SubmitApplication(context.Background(), req); err == nil {
		t.Fatal("submit should fail")
	}

	if f.fs.Exists(req.CVPath) {
		t.Fatal("orphaned upload should be deleted best-effort")
	}
}

func TestListByJobUsesCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	pagination := kernel.PaginationOptions{Page: 1, PageSize: 20}

	if _, err := f.svc.SubmitApplication(ctx, submitRequest()); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	// First read misses and populates
	first, err := f.svc.ListApplicationsByJob(ctx, "job-1", pagination)
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(first.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(first.Items))
	}
	if f.cache.Misses != 1 || f.cache.Hits != 0 {
		t.Fatalf("hits=%d misses=%d after first read", f.cache.Hits, f.cache.Misses)
	}

	// Second read is served from the cache
	if _, err := f.svc.ListApplicationsByJob(ctx, "job-1", pagination); err != nil {
		t.Fatalf("listing again: %v", err)
	}
	if f.cache.Hits != 1 {
		t.Fatalf("hits=%d after second read", f.cache.Hits)
	}
}

func TestReviewMutationsInvalidateListings(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	pagination := kernel.PaginationOptions{Page: 1, PageSize: 20}
	reviewer := kernel.UserID("admin-1")

	app, _ := f.svc.SubmitApplication(ctx, submitRequest())
	f.svc.ListApplicationsByJob(ctx, "job-1", pagination) // populate cache

	if _, err := f.svc.SetStatus(ctx, app.ID, application.ApplicationStatusReviewed, reviewer); err != nil {
		t.Fatalf("setting status: %v", err)
	}

	// The next read must not see the stale listing
	listing, err := f.svc.ListApplicationsByJob(ctx, "job-1", pagination)
	if err != nil {
		t.Fatalf("listing after review: %v", err)
	}
	if listing.Items[0].Status != application.ApplicationStatusReviewed {
		t.Fatalf("status in listing = %s, want REVIEWED", listing.Items[0].Status)
	}

	if _, err := f.svc.SetRating(ctx, app.ID, 4, reviewer); err != nil {
		t.Fatalf("setting rating: %v", err)
	}
	if _, err := f.svc.SetNotes(ctx, app.ID, "strong candidate", reviewer); err != nil {
		t.Fatalf("setting notes: %v", err)
	}

	// submit + 3 review mutations invalidated; listings repopulated in between
	if f.cache.Invalidations < 4 {
		t.Fatalf("invalidations = %d, want at least 4", f.cache.Invalidations)
	}

	got, _ := f.svc.GetApplicationByID(ctx, app.ID)
	if got.Rating == nil || *got.Rating != 4 {
		t.Fatalf("rating = %v", got.Rating)
	}
	if got.Notes == nil || *got.Notes != "strong candidate" {
		t.Fatalf("notes = %v", got.Notes)
	}
	if got.ReviewedBy == nil || *got.ReviewedBy != reviewer {
		t.Fatalf("reviewed_by = %v", got.ReviewedBy)
	}
}

func TestSetRatingOutOfRange(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	app, _ := f.svc.SubmitApplication(ctx, submitRequest())

	if _, err := f.svc.SetRating(ctx, app.ID, 6, "admin-1"); err == nil {
		t.Fatal("rating 6 should be rejected")
	}

	got, _ := f.svc.GetApplicationByID(ctx, app.ID)
	if got.Rating != nil {
		t.Fatal("rating persisted despite rejection")
	}
}

func TestDownloadResume(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := submitRequest()
	f.fs.WriteFile(ctx, req.CVPath, []byte("%PDF-1.7"))
	app, _ := f.svc.SubmitApplication(ctx, req)

	stream, filename, err := f.svc.DownloadResume(ctx, app.ID)
	if err != nil {
		t.Fatalf("downloading: %v", err)
	}
	defer stream.Close()
	if filename != "jane-cv.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestDeleteApplicationRemovesResume(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := submitRequest()
	f.fs.WriteFile(ctx, req.CVPath, []byte("%PDF-"))
	app, _ := f.svc.SubmitApplication(ctx, req)

	if err := f.svc.DeleteApplication(ctx, app.ID); err != nil {
		t.Fatalf("deleting: %v", err)
	}
	if f.fs.Exists(req.CVPath) {
		t.Fatal("stored resume should be removed with the application")
	}
	if _, err := f.repo.GetByID(ctx, app.ID); err == nil {
		t.Fatal("row should be gone")
	}
}
