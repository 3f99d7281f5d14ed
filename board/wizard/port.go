package wizard

import (
	"context"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// SessionStore persists in-progress wizard sessions. Implementations
// expire abandoned sessions on their own schedule; an expired session
// is indistinguishable from a missing one.
type SessionStore interface {
	// Save stores or refreshes a session
	Save(ctx context.Context, session *Session) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id kernel.WizardID) (*Session, error)

	// Delete discards a session
	Delete(ctx context.Context, id kernel.WizardID) error
}
