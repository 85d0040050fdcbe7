// Package session authenticates requests with host-issued access tokens and
// the host's Redis session records.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pasetotoken "github.com/Alijeyrad/notifications/pkg/paseto"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrSessionRevoked  = errors.New("session revoked or expired")
)

// redisKeySession returns the Redis key for a session. The host application
// writes these keys on login and deletes them on logout.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// Store reports whether server-side sessions are still alive.
type Store interface {
	Active(ctx context.Context, sessionID uuid.UUID) (bool, error)
	Create(ctx context.Context, sessionID, userID uuid.UUID, ttl time.Duration) error
	Revoke(ctx context.Context, sessionID uuid.UUID) error
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Active(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	err := s.rdb.Get(ctx, redisKeySession(sessionID.String())).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get session: %w", err)
	}
	return true, nil
}

func (s *redisStore) Create(ctx context.Context, sessionID, userID uuid.UUID, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, redisKeySession(sessionID.String()), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *redisStore) Revoke(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		slog.DebugContext(ctx, "revoke: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Authenticator
// ---------------------------------------------------------------------------

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*pasetotoken.Claims, error)
}

type authenticator struct {
	tokens   *pasetotoken.Manager
	sessions Store
}

// NewAuthenticator verifies tokens with tokens and, when sessions is not
// nil, rejects tokens whose session has ended.
func NewAuthenticator(tokens *pasetotoken.Manager, sessions Store) Authenticator {
	return &authenticator{tokens: tokens, sessions: sessions}
}

func (a *authenticator) Authenticate(ctx context.Context, token string) (*pasetotoken.Claims, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if claims.Type != pasetotoken.TokenTypeAccess {
		return nil, ErrUnauthenticated
	}

	if a.sessions != nil && claims.SessionID != nil {
		ok, err := a.sessions.Active(ctx, *claims.SessionID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrSessionRevoked
		}
	}
	return claims, nil
}
