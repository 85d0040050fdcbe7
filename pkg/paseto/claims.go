package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

// Only access tokens authenticate requests here; refresh tokens belong to
// the host application.
const TokenTypeAccess TokenType = "access"

// Claims is the verified token payload.
type Claims struct {
	Type      TokenType
	UserID    uuid.UUID
	SessionID *uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}

// GetUserID implements reqctx.AuthClaims.
func (c *Claims) GetUserID() uuid.UUID { return c.UserID }

// GetSessionID implements reqctx.AuthClaims.
func (c *Claims) GetSessionID() *uuid.UUID { return c.SessionID }

// IsExpired implements reqctx.AuthClaims.
func (c *Claims) IsExpired() bool { return time.Now().After(c.ExpiresAt) }
