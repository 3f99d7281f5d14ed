package applicationinfra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/pkg/errx"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

func newMockRepo(t *testing.T) (*PostgresApplicationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("opening sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewPostgresApplicationRepository(sqlx.NewDb(db, "postgres")), mock
}

func modelColumns() []string {
	return []string{
		"id", "job_id", "full_name", "email", "phone", "linkedin_url", "cv_url", "cv_path",
		"cv_filename", "answers", "status", "rating", "notes", "reviewed_at", "reviewed_by",
		"created_at", "updated_at",
	}
}

func TestGetByIDScansAnswers(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	answers := []byte(`[{"question_id":"q1","question_label":"Why us?","answer":"because"},` +
		`{"question_id":"q2","question_label":"Remote OK?","answer":true}]`)

	mock.ExpectQuery("FROM applications WHERE id = \\$1").
		WithArgs("app-1").
		WillReturnRows(sqlmock.NewRows(modelColumns()).AddRow(
			"app-1", "job-1", "Jane Doe", "jane@example.com", "+51 987654321",
			"https://linkedin.com/in/jdoe", "https://files.test/cv.pdf", "applications/job-1/cv.pdf",
			"jane-cv.pdf", answers, "NEW", nil, nil, nil, nil, now, now,
		))

	app, err := repo.GetByID(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("getting: %v", err)
	}
	if app.FullName != "Jane Doe" || app.Status != application.ApplicationStatusNew {
		t.Fatalf("entity: %+v", app)
	}
	if len(app.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(app.Answers))
	}
	if app.Answers[1].Value.Kind != application.AnswerKindBool || !app.Answers[1].Value.Bool {
		t.Fatalf("boolean answer: %+v", app.Answers[1].Value)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM applications WHERE id = \\$1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(modelColumns()))

	_, err := repo.GetByID(context.Background(), "missing")
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != "APPLICATION_NOT_FOUND" {
		t.Fatalf("want APPLICATION_NOT_FOUND, got %v", err)
	}
}

func TestCreateInsertsRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectExec("INSERT INTO applications").
		WillReturnResult(sqlmock.NewResult(0, 1))

	app := &application.Application{
		ID:          kernel.ApplicationID("app-1"),
		JobID:       kernel.JobID("job-1"),
		FullName:    kernel.FullName("Jane Doe"),
		Email:       kernel.Email("jane@example.com"),
		Phone:       kernel.PhoneNumber("+51 987654321"),
		LinkedInURL: kernel.LinkedInURL("https://linkedin.com/in/jdoe"),
		CVURL:       kernel.BucketURL("https://files.test/cv.pdf"),
		CVPath:      "applications/job-1/cv.pdf",
		CVFilename:  "jane-cv.pdf",
		Status:      application.ApplicationStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.Create(context.Background(), app); err != nil {
		t.Fatalf("creating: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateMissingRowReturnsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE applications SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	app := &application.Application{Status: application.ApplicationStatusReviewed}
	err := repo.Update(context.Background(), "missing", app)
	if err == nil {
		t.Fatal("want not-found error")
	}
}
