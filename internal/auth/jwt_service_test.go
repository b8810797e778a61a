package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret", "test-issuer", "test-audience")

	token, err := service.Generate("alice", "alice@example.com", []string{"User"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, []string{"User"}, claims.Roles)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuing := NewJWTService("secret-one", "test-issuer", "test-audience")
	validating := NewJWTService("secret-two", "test-issuer", "test-audience")

	token, err := issuing.Generate("alice", "alice@example.com", nil)
	assert.NoError(t, err)

	_, err = validating.Validate(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	issuing := NewJWTService("test-secret", "other-issuer", "test-audience")
	validating := NewJWTService("test-secret", "test-issuer", "test-audience")

	token, err := issuing.Generate("alice", "alice@example.com", nil)
	assert.NoError(t, err)

	_, err = validating.Validate(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestJWTService_RejectsWrongAudience(t *testing.T) {
	issuing := NewJWTService("test-secret", "test-issuer", "other-audience")
	validating := NewJWTService("test-secret", "test-issuer", "test-audience")

	token, err := issuing.Generate("alice", "alice@example.com", nil)
	assert.NoError(t, err)

	_, err = validating.Validate(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret", "test-issuer", "test-audience")

	// Sign a token with the same key and claims shape but already expired.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "test-issuer",
			Audience:  jwt.ClaimStrings{"test-audience"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = service.Validate(tokenString)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret", "test-issuer", "test-audience")

	_, err := service.Validate("not-a-token")
	assert.Equal(t, ErrInvalidToken, err)
}
