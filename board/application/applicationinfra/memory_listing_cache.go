package applicationinfra

import (
	"context"
	"strings"
	"sync"

	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// MemoryListingCache implements application.ListingCache in memory for
// tests and local development
type MemoryListingCache struct {
	mu       sync.Mutex
	listings map[string]*application.PaginatedApplicationsResponse

	// Counters for asserting cache behavior in tests
	Hits          int
	Misses        int
	Invalidations int
}

// NewMemoryListingCache creates an empty in-memory listing cache
func NewMemoryListingCache() *MemoryListingCache {
	return &MemoryListingCache{
		listings: make(map[string]*application.PaginatedApplicationsResponse),
	}
}

// GetList returns a cached listing, if present
func (c *MemoryListingCache) GetList(_ context.Context, key string) (*application.PaginatedApplicationsResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	listing, ok := c.listings[key]
	if ok {
		c.Hits++
	} else {
		c.Misses++
	}
	return listing, ok
}

// SetList stores a listing under key
func (c *MemoryListingCache) SetList(_ context.Context, key string, listing *application.PaginatedApplicationsResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listings[key] = listing
}

// Invalidate drops all cached listings of a job
func (c *MemoryListingCache) Invalidate(_ context.Context, jobID kernel.JobID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Invalidations++
	prefix := "applications:job:" + jobID.String() + ":"
	for key := range c.listings {
		if strings.HasPrefix(key, prefix) {
			delete(c.listings, key)
		}
	}
}
