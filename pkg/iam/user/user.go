package user

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/jobdeck/jobdeck/pkg/errx"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// User is an administrator account
type User struct {
	ID           kernel.UserID `db:"id" json:"id"`
	Email        kernel.Email  `db:"email" json:"email"`
	Name         string        `db:"name" json:"name"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Scopes       []string      `db:"scopes" json:"scopes"`
	Active       bool          `db:"active" json:"active"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// IsActive reports whether the account may authenticate
func (u *User) IsActive() bool {
	return u.Active
}

// HasAnyScope reports whether the user holds at least one of the scopes
func (u *User) HasAnyScope(scopes ...string) bool {
	for _, s := range scopes {
		if slices.Contains(u.Scopes, s) {
			return true
		}
	}
	return false
}

// Repository is the persistence port for admin users
type Repository interface {
	// FindByID retrieves a user by ID
	FindByID(ctx context.Context, id kernel.UserID) (*User, error)

	// FindByEmail retrieves a user by email
	FindByEmail(ctx context.Context, email kernel.Email) (*User, error)

	// Create creates a new user
	Create(ctx context.Context, u *User) error
}

// Error Registry
var ErrRegistry = errx.NewRegistry("USER")

var (
	CodeUserNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeUserSuspended = ErrRegistry.Register("SUSPENDED", errx.TypeAuthorization, http.StatusForbidden, "User account is suspended")
	CodeUserExists    = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "User already exists")
)

func ErrUserNotFound() *errx.Error  { return ErrRegistry.New(CodeUserNotFound) }
func ErrUserSuspended() *errx.Error { return ErrRegistry.New(CodeUserSuspended) }
func ErrUserExists() *errx.Error    { return ErrRegistry.New(CodeUserExists) }
