package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jobdeck/jobdeck/board/job"
	"github.com/jobdeck/jobdeck/pkg/kernel"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID             string          `db:"id"`
	Title          string          `db:"title"`
	Company        string          `db:"company"`
	Status         string          `db:"status"`
	MaxOpenings    int             `db:"max_openings"`
	OpeningsFilled int             `db:"openings_filled"`
	Questions      json.RawMessage `db:"questions"`
	PostedBy       string          `db:"posted_by"`
	PublishedAt    *time.Time      `db:"published_at"`
	ClosedAt       *time.Time      `db:"closed_at"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() (*job.Job, error) {
	var questions []job.Question
	if len(m.Questions) > 0 {
		if err := json.Unmarshal(m.Questions, &questions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
		}
	}

	return &job.Job{
		ID:             kernel.JobID(m.ID),
		Title:          kernel.JobTitle(m.Title),
		Company:        kernel.CompanyName(m.Company),
		Status:         job.JobStatus(m.Status),
		MaxOpenings:    m.MaxOpenings,
		OpeningsFilled: m.OpeningsFilled,
		Questions:      questions,
		PostedBy:       kernel.UserID(m.PostedBy),
		PublishedAt:    m.PublishedAt,
		ClosedAt:       m.ClosedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) (*jobModel, error) {
	var questions json.RawMessage
	if j.Questions != nil {
		data, err := json.Marshal(j.Questions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal questions: %w", err)
		}
		questions = data
	}

	return &jobModel{
		ID:             string(j.ID),
		Title:          string(j.Title),
		Company:        string(j.Company),
		Status:         string(j.Status),
		MaxOpenings:    j.MaxOpenings,
		OpeningsFilled: j.OpeningsFilled,
		Questions:      questions,
		PostedBy:       string(j.PostedBy),
		PublishedAt:    j.PublishedAt,
		ClosedAt:       j.ClosedAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

const jobColumns = `
	id, title, company, status, max_openings, openings_filled,
	questions, posted_by, published_at, closed_at, created_at, updated_at
`

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (
			id, title, company, status, max_openings, openings_filled,
			questions, posted_by, published_at, closed_at, created_at, updated_at
		) VALUES (
			:id, :title, :company, :status, :max_openings, :openings_filled,
			:questions, :posted_by, :published_at, :closed_at, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return job.ErrJobAlreadyExists()
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// Update updates an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE jobs SET
			title = :title,
			company = :company,
			status = :status,
			max_openings = :max_openings,
			openings_filled = :openings_filled,
			questions = :questions,
			published_at = :published_at,
			closed_at = :closed_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var model jobModel
	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return model.toEntity()
}

// Delete deletes a job by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// List retrieves all jobs with pagination
func (r *PostgresJobRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.list(ctx, pagination, "")
}

// ListOpen retrieves only open jobs
func (r *PostgresJobRepository) ListOpen(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.list(ctx, pagination, string(job.JobStatusOpen))
}

func (r *PostgresJobRepository) list(ctx context.Context, pagination kernel.PaginationOptions, status string) (*kernel.Paginated[job.Job], error) {
	where := ""
	args := []any{}
	if status != "" {
		where = " WHERE status = $1"
		args = append(args, status)
	}

	// Count total
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM jobs`+where, args...); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	// Calculate pagination
	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s FROM jobs%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, jobColumns, where, len(args)+1, len(args)+2)
	args = append(args, pagination.PageSize, offset)

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	entities := make([]job.Job, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return &kernel.Paginated[job.Job]{
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

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, string(id)); err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}
	return exists, nil
}

// CountApplications counts applications submitted against a job
func (r *PostgresJobRepository) CountApplications(ctx context.Context, jobID kernel.JobID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`
	if err := r.db.GetContext(ctx, &count, query, string(jobID)); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}
