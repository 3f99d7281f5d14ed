package userinfra

import (
	"context"
	"sync"

	"github.com/jobdeck/jobdeck/pkg/iam/user"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// MemoryUserRepository implements user.Repository in memory for tests
// and local development
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[kernel.UserID]user.User
}

// NewMemoryUserRepository creates an empty in-memory repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[kernel.UserID]user.User),
	}
}

// FindByID retrieves a user by ID
func (r *MemoryUserRepository) FindByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	return &u, nil
}

// FindByEmail retrieves a user by email
func (r *MemoryUserRepository) FindByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

// Create creates a new user
func (r *MemoryUserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; ok {
		return user.ErrUserExists()
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrUserExists()
		}
	}

	r.users[u.ID] = *u
	return nil
}
