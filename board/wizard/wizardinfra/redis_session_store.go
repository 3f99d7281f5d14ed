package wizardinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jobdeck/jobdeck/board/wizard"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// Abandoned sessions expire on their own; every save refreshes the TTL
const sessionTTL = 30 * time.Minute

// RedisSessionStore implements wizard.SessionStore using Redis
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a new Redis-backed session store
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(id kernel.WizardID) string {
	return "wizard:session:" + id.String()
}

// Save stores or refreshes a session
func (s *RedisSessionStore) Save(ctx context.Context, session *wizard.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID
func (s *RedisSessionStore) Get(ctx context.Context, id kernel.WizardID) (*wizard.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, wizard.ErrSessionNotFound()
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session wizard.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Delete discards a session
func (s *RedisSessionStore) Delete(ctx context.Context, id kernel.WizardID) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
