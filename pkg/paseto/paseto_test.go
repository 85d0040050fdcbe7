package pasetotoken

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, keys Keys) *Manager {
	t.Helper()
	m, err := New(Config{Mode: keys.Mode, Issuer: "host", Audience: "notifications", TTL: time.Minute}, keys)
	require.NoError(t, err)
	return m
}

func TestIssueVerify(t *testing.T) {
	for _, keys := range []Keys{NewLocalKeys(), NewPublicKeys()} {
		t.Run(string(keys.Mode), func(t *testing.T) {
			m := newManager(t, keys)
			user, sid := uuid.New(), uuid.New()

			tok, err := m.Issue(user, &sid)
			require.NoError(t, err)

			claims, err := m.Verify(tok)
			require.NoError(t, err)
			assert.Equal(t, TokenTypeAccess, claims.Type)
			assert.Equal(t, user, claims.UserID)
			require.NotNil(t, claims.SessionID)
			assert.Equal(t, sid, *claims.SessionID)
			assert.False(t, claims.IsExpired())
			assert.NotEmpty(t, claims.TokenID)
		})
	}
}

func TestVerifyWithoutSession(t *testing.T) {
	m := newManager(t, NewLocalKeys())
	tok, err := m.Issue(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Nil(t, claims.SessionID)
}

func TestVerifyRejects(t *testing.T) {
	m := newManager(t, NewLocalKeys())
	other := newManager(t, NewLocalKeys())
	foreign, err := other.Issue(uuid.New(), nil)
	require.NoError(t, err)

	wrongAudience, err := New(Config{Mode: ModeLocal, Issuer: "host", Audience: "billing"}, m.keys)
	require.NoError(t, err)
	misdirected, err := wrongAudience.Issue(uuid.New(), nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"other key", foreign},
		{"other audience", misdirected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			var invalid ErrInvalidToken
			assert.True(t, errors.As(err, &invalid))
		})
	}
}

func TestLoadKeys(t *testing.T) {
	_, err := LoadKeys(KeyStrings{Mode: ModeLocal})
	assert.Error(t, err)

	_, err = LoadKeys(KeyStrings{Mode: "jwt"})
	assert.Error(t, err)

	pub := NewPublicKeys()
	keys, err := LoadKeys(KeyStrings{Mode: ModePublic, PublicHex: pub.Public.ExportHex()})
	require.NoError(t, err)
	assert.Nil(t, keys.Secret)

	local := NewLocalKeys()
	keys, err = LoadKeys(KeyStrings{Mode: ModeLocal, SymmetricHex: local.Symmetric.ExportHex()})
	require.NoError(t, err)
	assert.Equal(t, local.Symmetric.ExportHex(), keys.Symmetric.ExportHex())
}

func TestNewValidatesConfig(t *testing.T) {
	keys := NewLocalKeys()
	_, err := New(Config{Mode: ModePublic, Issuer: "i", Audience: "a"}, keys)
	assert.Error(t, err)
	_, err = New(Config{Mode: ModeLocal, Audience: "a"}, keys)
	assert.Error(t, err)
	_, err = New(Config{Mode: ModeLocal, Issuer: "i"}, keys)
	assert.Error(t, err)
}
