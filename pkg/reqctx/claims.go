package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// AuthClaims is what the rest of the service needs to know about the
// caller. *pasetotoken.Claims implements it.
type AuthClaims interface {
	// GetUserID returns the recipient the request acts for.
	GetUserID() uuid.UUID

	// GetSessionID returns the host session id, if the token carries one.
	GetSessionID() *uuid.UUID

	IsExpired() bool
}

// WithClaims stores authentication claims in the context.
func WithClaims(ctx context.Context, claims AuthClaims) context.Context {
	return context.WithValue(ctx, keyClaims, claims)
}

// ClaimsFromContext retrieves authentication claims from the context.
// Returns nil if not set or if the request is not authenticated.
func ClaimsFromContext(ctx context.Context) AuthClaims {
	v := ctx.Value(keyClaims)
	if v == nil {
		return nil
	}
	claims, ok := v.(AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// IsAuthenticated returns true if valid claims exist in the context.
func IsAuthenticated(ctx context.Context) bool {
	claims := ClaimsFromContext(ctx)
	return claims != nil && !claims.IsExpired()
}

// UserIDFromContext extracts the user ID from claims.
// Returns uuid.Nil and false if not authenticated.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if !IsAuthenticated(ctx) {
		return uuid.Nil, false
	}
	return ClaimsFromContext(ctx).GetUserID(), true
}
