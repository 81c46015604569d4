package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-labs/conduit/domain"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService([]byte("super-secret"), time.Hour)

	token, err := svc.Issue(42, "jake")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "jake", claims.Username)
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService([]byte("super-secret"), 0)

	token, err := svc.Issue(1, "jake")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 59*24*time.Hour)
	assert.LessOrEqual(t, remaining, 60*24*time.Hour)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService([]byte("super-secret"), -time.Minute)

	token, err := svc.Issue(1, "jake")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("right-secret"), time.Hour)
	verifier := NewTokenService([]byte("wrong-secret"), time.Hour)

	token, err := issuer.Issue(1, "jake")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_TamperedPayload(t *testing.T) {
	svc := NewTokenService([]byte("super-secret"), time.Hour)

	token, err := svc.Issue(1, "jake")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = "eyJpZCI6OTk5LCJ1c2VybmFtZSI6ImV2aWwifQ"
	tampered := strings.Join(parts, ".")

	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService([]byte("super-secret"), time.Hour)

	for _, bad := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.Validate(bad)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "token %q", bad)
	}
}
