package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", []string{"admin"})

	token, err := m.Issue("user-1", "admin", time.Hour)
	require.NoError(t, err)

	s, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, "admin", s.Role)
	assert.Equal(t, token, s.Token)
	assert.NotEmpty(t, s.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, 5*time.Second)
}

func TestManager_ParseErrors(t *testing.T) {
	m := NewManager("secret", []string{"admin"})
	other := NewManager("other-secret", []string{"admin"})

	foreign, err := other.Issue("user-1", "admin", time.Hour)
	require.NoError(t, err)

	expired, err := m.Issue("user-1", "admin", -time.Minute)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: "admin"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{ID: "no-exp", Subject: "user-1"},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", ErrMissingToken},
		{"garbage", "not-a-token", ErrInvalidToken},
		{"wrong secret", foreign, ErrInvalidToken},
		{"expired", expired, ErrInvalidToken},
		{"alg none", none, ErrInvalidToken},
		{"no expiry", noExpiry, ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Parse(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestManager_Authorize(t *testing.T) {
	m := NewManager("secret", []string{"admin", "Manager"})

	assert.NoError(t, m.Authorize(&Session{Role: "admin"}))
	assert.NoError(t, m.Authorize(&Session{Role: "manager"}))
	assert.ErrorIs(t, m.Authorize(&Session{Role: "guest"}), ErrForbidden)
	assert.ErrorIs(t, m.Authorize(&Session{}), ErrForbidden)
}

func TestManager_Revoke(t *testing.T) {
	m := NewManager("secret", []string{"admin"})

	token, err := m.Issue("user-1", "admin", time.Hour)
	require.NoError(t, err)
	s, err := m.Parse(token)
	require.NoError(t, err)

	m.Revoke(s)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrRevoked)

	fresh, err := m.Issue("user-1", "admin", time.Hour)
	require.NoError(t, err)
	_, err = m.Parse(fresh)
	assert.NoError(t, err)
}

func TestManager_RevokedEntriesPurgedAfterExpiry(t *testing.T) {
	m := NewManager("secret", []string{"admin"})
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Revoke(&Session{ID: "old", ExpiresAt: now.Add(time.Minute)})
	now = now.Add(time.Hour)
	m.Revoke(&Session{ID: "new", ExpiresAt: now.Add(time.Minute)})

	assert.False(t, m.isRevoked("old"))
	assert.True(t, m.isRevoked("new"))
}

func TestManager_RevokeWithoutExpiryIsPermanent(t *testing.T) {
	m := NewManager("secret", []string{"admin"})
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Revoke(&Session{ID: "forever"})
	now = now.Add(25 * time.Hour)
	m.Revoke(&Session{ID: "other", ExpiresAt: now.Add(time.Minute)})

	assert.True(t, m.isRevoked("forever"))
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	s := &Session{UserID: "user-1"}
	got, ok := FromContext(WithSession(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}
