package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainerrors "skolmaten/internal/errors"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, issuedAt, err := svc.GenerateSessionToken(42, "anna")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, issuedAt.IsZero())

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "anna", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.NotNil(t, claims.IssuedAt)
	assert.Nil(t, claims.ExpiresAt, "session tokens do not expire")
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	svc := NewJWTService("test-secret")

	first, _, err := svc.GenerateSessionToken(1, "anna")
	require.NoError(t, err)
	second, _, err := svc.GenerateSessionToken(1, "anna")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_RejectsForeignKey(t *testing.T) {
	token, _, err := NewJWTService("key-a").GenerateSessionToken(1, "anna")
	require.NoError(t, err)

	_, err = NewJWTService("key-b").ValidateToken(token)
	assert.Error(t, err)

	_, err = NewJWTService("key-a").ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, h.Verify(hash, "hunter2"))
	assert.False(t, h.Verify(hash, "hunter3"))
	assert.False(t, h.Verify("deletedaccount", "deletedaccount"), "non-bcrypt sentinels never verify")

	again, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestPasswordHasher_CountsBytes(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	// 36 two-byte runes fit exactly
	_, err := h.Hash(strings.Repeat("é", 36))
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("é", 40))
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooLong)
	_, err = h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooLong)
}

func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(100).cost)
	assert.Equal(t, bcrypt.MinCost, NewPasswordHasher(bcrypt.MinCost).cost)
}
