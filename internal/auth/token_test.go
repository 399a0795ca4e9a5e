package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopehr/hr-api/internal/models"
)

var testUser = &models.User{
	ID:    42,
	Email: "jane@example.com",
	Role:  models.RoleAdmin,
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Nanosecond)

	token, err := svc.Issue(testUser)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		claims, err := svc.Verify(tok)
		assert.Error(t, err)
		assert.Nil(t, claims)
	}
}

func TestExtractFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"case_insensitive_scheme", "bearer abc", "abc"},
		{"missing_header", "", ""},
		{"wrong_scheme", "Basic dXNlcjpwYXNz", ""},
		{"token_only", "abc.def.ghi", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFromHeader(tt.header))
		})
	}
}

func TestDefaultTTLApplied(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	assert.Equal(t, DefaultTokenTTL, svc.ttl)
}
