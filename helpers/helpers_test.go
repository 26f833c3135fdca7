package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("s3cret")
	token, refresh, err := issuer.GenerateAllTokens("a@b.co", "Asha", "u1", "CASHIER")
	require.NoError(t, err)
	require.NotEmpty(t, refresh)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", claims.Email)
	assert.Equal(t, "u1", claims.Uid)
	assert.Equal(t, "CASHIER", claims.User_role)
}

func TestValidateTokenRejectsRefreshToken(t *testing.T) {
	issuer := NewTokenIssuer("s3cret")
	_, refresh, err := issuer.GenerateAllTokens("a@b.co", "Asha", "u1", "ADMIN")
	require.NoError(t, err)

	_, err = issuer.ValidateToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsOtherSecret(t *testing.T) {
	token, _, err := NewTokenIssuer("one").GenerateAllTokens("a@b.co", "Asha", "u1", "ADMIN")
	require.NoError(t, err)

	_, err = NewTokenIssuer("two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("s3cret")
	issuer.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, _, err := issuer.GenerateAllTokens("a@b.co", "Asha", "u1", "ADMIN")
	require.NoError(t, err)

	_, err = NewTokenIssuer("s3cret").ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	ok, msg := VerifyPassword("hunter22", hash)
	assert.True(t, ok)
	assert.Empty(t, msg)

	ok, msg = VerifyPassword("wrong", hash)
	assert.False(t, ok)
	assert.Equal(t, "email or password is incorrect", msg)
}
