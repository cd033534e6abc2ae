package auth

import (
	"testing"
	"time"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptVerifier(t *testing.T) {
	hash, err := HashPassword("123456")
	require.NoError(t, err)

	verifier := BcryptVerifier{}
	assert.NoError(t, verifier.Verify(hash, "123456"))
	assert.Error(t, verifier.Verify(hash, "654321"))
	assert.Error(t, verifier.Verify("not-a-hash", "123456"))
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	user := domain.PublicUser{ID: "u1", Name: "User", Email: "user@nextmail.com"}
	token, err := svc.Issue(user)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "user@nextmail.com", claims.UserEmail)
	assert.Equal(t, "User", claims.UserName)
}

func TestTokenService_RejectsForeignSecret(t *testing.T) {
	issued, err := NewTokenService("secret-a", time.Hour).
		Issue(domain.PublicUser{ID: "u1", Email: "user@nextmail.com"})
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Validate(issued)
	assert.Error(t, err)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)

	token, err := svc.Issue(domain.PublicUser{ID: "u1", Email: "user@nextmail.com"})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}
