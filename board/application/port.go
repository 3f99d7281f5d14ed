package application

import (
	"context"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

type Repository interface {
	// Create creates a new application
	Create(ctx context.Context, application *Application) error

	// Update updates the mutable review fields of an application
	Update(ctx context.Context, id kernel.ApplicationID, application *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// Delete deletes an application by ID
	Delete(ctx context.Context, id kernel.ApplicationID) error

	// List retrieves all applications with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// ListByJobID retrieves applications for a specific job
	ListByJobID(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// CountByJobID counts applications for a specific job
	CountByJobID(ctx context.Context, jobID kernel.JobID) (int64, error)
}

// ListingCache caches paginated application listings so admin review
// screens avoid repeated queries. Review mutations invalidate it.
type ListingCache interface {
	// GetList returns a cached listing, if present
	GetList(ctx context.Context, key string) (*PaginatedApplicationsResponse, bool)

	// SetList stores a listing under key
	SetList(ctx context.Context, key string, listing *PaginatedApplicationsResponse)

	// Invalidate drops all listings that could contain applications of jobID
	Invalidate(ctx context.Context, jobID kernel.JobID)
}
