package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SessionStore = (*SessionStore)(nil)

const (
	// Key prefixes for Redis
	sessionPrefix        = "session:"
	sessionRefreshPrefix = "session:refresh:"
	sessionUserPrefix    = "session:user:"
)

// SessionStore implements driven.SessionStore using Redis
// Sessions use Redis TTL for automatic expiration
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new Redis-backed SessionStore
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save stores a session with TTL based on ExpiresAt
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	// Calculate TTL from ExpiresAt
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		// Session already expired, don't save
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Use pipeline for atomic operations
	pipe := s.client.Pipeline()

	// Store session by ID
	pipe.Set(ctx, sessionPrefix+session.ID, data, ttl)

	// Index by refresh token
	if session.RefreshToken != "" {
		pipe.Set(ctx, sessionRefreshPrefix+session.RefreshToken, session.ID, ttl)
	}

	// Add to user's session set
	pipe.SAdd(ctx, sessionUserPrefix+session.UserID, session.ID)
	pipe.Expire(ctx, sessionUserPrefix+session.UserID, 30*24*time.Hour)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// GetByRefreshToken retrieves a session by refresh token value
func (s *SessionStore) GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	sessionID, err := s.client.Get(ctx, sessionRefreshPrefix+refreshToken).Result()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session by refresh token: %w", err)
	}

	return s.Get(ctx, sessionID)
}

// Delete deletes a session
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	// Get session first to clean up indexes
	session, err := s.Get(ctx, id)
	if err == domain.ErrSessionNotFound {
		return nil // Already deleted
	}
	if err != nil {
		return err
	}

	return s.deleteSession(ctx, session)
}

// DeleteByUser deletes all sessions for a user (logout everywhere)
func (s *SessionStore) DeleteByUser(ctx context.Context, userID string) error {
	sessionIDs, err := s.client.SMembers(ctx, sessionUserPrefix+userID).Result()
	if err != nil {
		return fmt.Errorf("failed to get user sessions: %w", err)
	}

	for _, sessionID := range sessionIDs {
		if err := s.Delete(ctx, sessionID); err != nil {
			// Some sessions may have already expired
			continue
		}
	}

	s.client.Del(ctx, sessionUserPrefix+userID)

	return nil
}

// deleteSession removes a session and all its indexes
func (s *SessionStore) deleteSession(ctx context.Context, session *domain.Session) error {
	pipe := s.client.Pipeline()

	pipe.Del(ctx, sessionPrefix+session.ID)

	if session.RefreshToken != "" {
		pipe.Del(ctx, sessionRefreshPrefix+session.RefreshToken)
	}

	pipe.SRem(ctx, sessionUserPrefix+session.UserID, session.ID)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
