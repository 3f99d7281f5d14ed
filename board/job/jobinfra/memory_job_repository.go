package jobinfra

import (
	"context"
	"sort"
	"sync"

	"github.com/jobdeck/jobdeck/board/job"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// MemoryJobRepository implements job.Repository in memory for tests
// and local development
type MemoryJobRepository struct {
	mu   sync.RWMutex
	jobs map[kernel.JobID]job.Job

	// ApplicationCounts backs CountApplications; tests set it directly
	ApplicationCounts map[kernel.JobID]int64
}

// NewMemoryJobRepository creates an empty in-memory repository
func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{
		jobs:              make(map[kernel.JobID]job.Job),
		ApplicationCounts: make(map[kernel.JobID]int64),
	}
}

// Create creates a new job
func (r *MemoryJobRepository) Create(_ context.Context, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[j.ID]; ok {
		return job.ErrJobAlreadyExists()
	}

	r.jobs[j.ID] = *j
	return nil
}

// Update updates an existing job
func (r *MemoryJobRepository) Update(_ context.Context, id kernel.JobID, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}

	r.jobs[id] = *j
	return nil
}

// GetByID retrieves a job by ID
func (r *MemoryJobRepository) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}

	return &j, nil
}

// Delete deletes a job by ID
func (r *MemoryJobRepository) Delete(_ context.Context, id kernel.JobID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}

	delete(r.jobs, id)
	return nil
}

// List retrieves all jobs with pagination
func (r *MemoryJobRepository) List(_ context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.listFiltered(pagination, func(job.Job) bool { return true })
}

// ListOpen retrieves only open jobs
func (r *MemoryJobRepository) ListOpen(_ context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.listFiltered(pagination, func(j job.Job) bool { return j.Status == job.JobStatusOpen })
}

func (r *MemoryJobRepository) listFiltered(pagination kernel.PaginationOptions, keep func(job.Job) bool) (*kernel.Paginated[job.Job], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]job.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if keep(j) {
			matched = append(matched, j)
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
	return &kernel.Paginated[job.Job]{
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

// Exists checks if a job exists by ID
func (r *MemoryJobRepository) Exists(_ context.Context, id kernel.JobID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.jobs[id]
	return ok, nil
}

// CountApplications counts applications submitted against a job
func (r *MemoryJobRepository) CountApplications(_ context.Context, jobID kernel.JobID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.ApplicationCounts[jobID], nil
}
