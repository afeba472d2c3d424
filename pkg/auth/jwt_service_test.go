package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	owner := uuid.New()

	token, err := svc.GenerateToken(owner)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, owner, claims.OwnerID)
	assert.Equal(t, owner.String(), claims.Subject)
}

func TestValidateRejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	owner := uuid.New()

	expired, err := NewJWTService("secret", -time.Minute).GenerateToken(owner)
	require.NoError(t, err)
	foreign, err := NewJWTService("other", time.Hour).GenerateToken(owner)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"garbage":      "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			assert.Error(t, err)
		})
	}

	_, err = NewJWTService("", time.Hour).ValidateToken(expired)
	assert.Error(t, err)
}

func TestValidateSubjectOnlyToken(t *testing.T) {
	owner := uuid.New()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   owner.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := NewJWTService("secret", time.Hour).ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, owner, claims.OwnerID)

	bad := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "someone"})
	signed, err = bad.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = NewJWTService("secret", time.Hour).ValidateToken(signed)
	assert.Error(t, err)
}
