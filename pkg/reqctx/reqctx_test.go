package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeClaims struct {
	user    uuid.UUID
	expires time.Time
}

func (f fakeClaims) GetUserID() uuid.UUID     { return f.user }
func (f fakeClaims) GetSessionID() *uuid.UUID { return nil }
func (f fakeClaims) IsExpired() bool          { return time.Now().After(f.expires) }

func TestClaims(t *testing.T) {
	ctx := context.Background()
	_, ok := UserIDFromContext(ctx)
	assert.False(t, ok)
	assert.Nil(t, ClaimsFromContext(ctx))

	user := uuid.New()
	live := WithClaims(ctx, fakeClaims{user: user, expires: time.Now().Add(time.Minute)})
	got, ok := UserIDFromContext(live)
	assert.True(t, ok)
	assert.Equal(t, user, got)

	stale := WithClaims(ctx, fakeClaims{user: user, expires: time.Now().Add(-time.Minute)})
	assert.False(t, IsAuthenticated(stale))
	_, ok = UserIDFromContext(stale)
	assert.False(t, ok)
}

func TestRequestMeta(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = WithRequestMeta(ctx, &RequestMeta{RequestID: "abc"})
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
}
