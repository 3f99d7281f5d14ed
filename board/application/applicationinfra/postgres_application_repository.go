package applicationinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/pkg/kernel"
	"github.com/lib/pq"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// ============================================================================
// Database Model
// ============================================================================

type applicationModel struct {
	ID          string          `db:"id"`
	JobID       string          `db:"job_id"`
	FullName    string          `db:"full_name"`
	Email       string          `db:"email"`
	Phone       string          `db:"phone"`
	LinkedInURL string          `db:"linkedin_url"`
	CVURL       string          `db:"cv_url"`
	CVPath      string          `db:"cv_path"`
	CVFilename  string          `db:"cv_filename"`
	Answers     json.RawMessage `db:"answers"`
	Status      string          `db:"status"`
	Rating      *int            `db:"rating"`
	Notes       *string         `db:"notes"`
	ReviewedAt  *time.Time      `db:"reviewed_at"`
	ReviewedBy  *string         `db:"reviewed_by"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() (*application.Application, error) {
	var answers []application.Answer
	if len(m.Answers) > 0 {
		if err := json.Unmarshal(m.Answers, &answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
	}

	var reviewedBy *kernel.UserID
	if m.ReviewedBy != nil {
		id := kernel.UserID(*m.ReviewedBy)
		reviewedBy = &id
	}

	return &application.Application{
		ID:          kernel.ApplicationID(m.ID),
		JobID:       kernel.JobID(m.JobID),
		FullName:    kernel.FullName(m.FullName),
		Email:       kernel.Email(m.Email),
		Phone:       kernel.PhoneNumber(m.Phone),
		LinkedInURL: kernel.LinkedInURL(m.LinkedInURL),
		CVURL:       kernel.BucketURL(m.CVURL),
		CVPath:      m.CVPath,
		CVFilename:  m.CVFilename,
		Answers:     answers,
		Status:      application.ApplicationStatus(m.Status),
		Rating:      m.Rating,
		Notes:       m.Notes,
		ReviewedAt:  m.ReviewedAt,
		ReviewedBy:  reviewedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(a *application.Application) (*applicationModel, error) {
	var answers json.RawMessage
	if a.Answers != nil {
		data, err := json.Marshal(a.Answers)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal answers: %w", err)
		}
		answers = data
	}

	var reviewedBy *string
	if a.ReviewedBy != nil {
		id := string(*a.ReviewedBy)
		reviewedBy = &id
	}

	return &applicationModel{
		ID:          string(a.ID),
		JobID:       string(a.JobID),
		FullName:    string(a.FullName),
		Email:       string(a.Email),
		Phone:       string(a.Phone),
		LinkedInURL: string(a.LinkedInURL),
		CVURL:       string(a.CVURL),
		CVPath:      a.CVPath,
		CVFilename:  a.CVFilename,
		Answers:     answers,
		Status:      string(a.Status),
		Rating:      a.Rating,
		Notes:       a.Notes,
		ReviewedAt:  a.ReviewedAt,
		ReviewedBy:  reviewedBy,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

const applicationColumns = `
	id, job_id, full_name, email, phone, linkedin_url, cv_url, cv_path,
	cv_filename, answers, status, rating, notes, reviewed_at, reviewed_by,
	created_at, updated_at
`

// Create inserts a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model, err := fromEntity(app)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO applications (
			id, job_id, full_name, email, phone, linkedin_url, cv_url, cv_path,
			cv_filename, answers, status, rating, notes, reviewed_at, reviewed_by,
			created_at, updated_at
		) VALUES (
			:id, :job_id, :full_name, :email, :phone, :linkedin_url, :cv_url, :cv_path,
			:cv_filename, :answers, :status, :rating, :notes, :reviewed_at, :reviewed_by,
			:created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("job %s does not exist: %w", app.JobID, err)
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// Update updates the mutable review fields of an application
func (r *PostgresApplicationRepository) Update(ctx context.Context, id kernel.ApplicationID, app *application.Application) error {
	model, err := fromEntity(app)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE applications SET
			status = :status,
			rating = :rating,
			notes = :notes,
			reviewed_at = :reviewed_at,
			reviewed_by = :reviewed_by,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var model applicationModel
	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return model.toEntity()
}

// Delete deletes an application by ID
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// List retrieves all applications with pagination
func (r *PostgresApplicationRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	return r.list(ctx, pagination, "")
}

// ListByJobID retrieves applications for a specific job
func (r *PostgresApplicationRepository) ListByJobID(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	return r.list(ctx, pagination, string(jobID))
}

func (r *PostgresApplicationRepository) list(ctx context.Context, pagination kernel.PaginationOptions, jobID string) (*kernel.Paginated[application.Application], error) {
	where := ""
	args := []any{}
	if jobID != "" {
		where = " WHERE job_id = $1"
		args = append(args, jobID)
	}

	// Count total
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM applications`+where, args...); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	// Calculate pagination
	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s FROM applications%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, applicationColumns, where, len(args)+1, len(args)+2)
	args = append(args, pagination.PageSize, offset)

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	entities := make([]application.Application, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return &kernel.Paginated[application.Application]{
		Items: entities,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(entities) == 0,
	}, nil
}

// CountByJobID counts applications for a specific job
func (r *PostgresApplicationRepository) CountByJobID(ctx context.Context, jobID kernel.JobID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`
	if err := r.db.GetContext(ctx, &count, query, string(jobID)); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}
