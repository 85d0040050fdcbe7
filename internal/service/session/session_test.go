package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pasetotoken "github.com/Alijeyrad/notifications/pkg/paseto"
)

type memStore struct {
	live map[uuid.UUID]bool
	err  error
}

func (m *memStore) Active(_ context.Context, id uuid.UUID) (bool, error) {
	return m.live[id], m.err
}

func (m *memStore) Create(_ context.Context, id, _ uuid.UUID, _ time.Duration) error {
	m.live[id] = true
	return nil
}

func (m *memStore) Revoke(_ context.Context, id uuid.UUID) error {
	delete(m.live, id)
	return nil
}

func newTokens(t *testing.T) *pasetotoken.Manager {
	t.Helper()
	keys := pasetotoken.NewLocalKeys()
	m, err := pasetotoken.New(pasetotoken.Config{Mode: keys.Mode, Issuer: "host", Audience: "notifications"}, keys)
	require.NoError(t, err)
	return m
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	tokens := newTokens(t)
	store := &memStore{live: map[uuid.UUID]bool{}}
	auth := NewAuthenticator(tokens, store)

	user, sid := uuid.New(), uuid.New()
	require.NoError(t, store.Create(ctx, sid, user, time.Hour))
	tok, err := tokens.Issue(user, &sid)
	require.NoError(t, err)

	claims, err := auth.Authenticate(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, user, claims.UserID)

	require.NoError(t, store.Revoke(ctx, sid))
	_, err = auth.Authenticate(ctx, tok)
	assert.ErrorIs(t, err, ErrSessionRevoked)

	_, err = auth.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = auth.Authenticate(ctx, "v4.local.garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticateStoreFailure(t *testing.T) {
	ctx := context.Background()
	tokens := newTokens(t)
	boom := errors.New("redis down")
	auth := NewAuthenticator(tokens, &memStore{err: boom})

	sid := uuid.New()
	tok, err := tokens.Issue(uuid.New(), &sid)
	require.NoError(t, err)

	_, err = auth.Authenticate(ctx, tok)
	assert.ErrorIs(t, err, boom)
}

func TestAuthenticateWithoutSessions(t *testing.T) {
	tokens := newTokens(t)
	auth := NewAuthenticator(tokens, nil)

	sid := uuid.New()
	tok, err := tokens.Issue(uuid.New(), &sid)
	require.NoError(t, err)

	_, err = auth.Authenticate(context.Background(), tok)
	assert.NoError(t, err)
}
