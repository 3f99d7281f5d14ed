package applicationinfra

import (
	"context"
	"sort"
	"sync"

	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// MemoryApplicationRepository implements application.Repository in memory
// for tests and local development
type MemoryApplicationRepository struct {
	mu   sync.RWMutex
	apps map[kernel.ApplicationID]application.Application

	// FailCreate makes Create return an error, for exercising the
	// submission failure path
	FailCreate error
}

// NewMemoryApplicationRepository creates an empty in-memory repository
func NewMemoryApplicationRepository() *MemoryApplicationRepository {
	return &MemoryApplicationRepository{
		apps: make(map[kernel.ApplicationID]application.Application),
	}
}

// Create inserts a new application
func (r *MemoryApplicationRepository) Create(_ context.Context, app *application.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailCreate != nil {
		return r.FailCreate
	}

	r.apps[app.ID] = *app
	return nil
}

// Update updates the mutable review fields of an application
func (r *MemoryApplicationRepository) Update(_ context.Context, id kernel.ApplicationID, app *application.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.apps[id]; !ok {
		return application.ErrApplicationNotFound()
	}

	r.apps[id] = *app
	return nil
}

// GetByID retrieves an application by ID
func (r *MemoryApplicationRepository) GetByID(_ context.Context, id kernel.ApplicationID) (*application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.apps[id]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}

	return &app, nil
}

// Delete deletes an application by ID
func (r *MemoryApplicationRepository) Delete(_ context.Context, id kernel.ApplicationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.apps[id]; !ok {
		return application.ErrApplicationNotFound()
	}

	delete(r.apps, id)
	return nil
}

// List retrieves all applications with pagination
func (r *MemoryApplicationRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	return r.listFiltered(pagination, func(application.Application) bool { return true })
}

// ListByJobID retrieves applications for a specific job
func (r *MemoryApplicationRepository) ListByJobID(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	return r.listFiltered(pagination, func(a application.Application) bool { return a.JobID == jobID })
}

func (r *MemoryApplicationRepository) listFiltered(pagination kernel.PaginationOptions, keep func(application.Application) bool) (*kernel.Paginated[application.Application], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]application.Application, 0, len(r.apps))
	for _, app := range r.apps {
		if keep(app) {
			matched = append(matched, app)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	start := (pagination.Page - 1) * pagination.PageSize
	if start > total {
		start = total
	}
	end := start + pagination.PageSize
	if end > total {
		end = total
	}

	page := matched[start:end]
	return &kernel.Paginated[application.Application]{
		Items: page,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(page) == 0,
	}, nil
}

// CountByJobID counts applications for a specific job
func (r *MemoryApplicationRepository) CountByJobID(_ context.Context, jobID kernel.JobID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, app := range r.apps {
		if app.JobID == jobID {
			count++
		}
	}
	return count, nil
}
