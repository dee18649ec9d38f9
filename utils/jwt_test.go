package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeapp/scribe/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken(42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokensUniquePerIssue(t *testing.T) {
	first, err := utils.GenerateToken(1, time.Hour)
	require.NoError(t, err)
	second, err := utils.GenerateToken(1, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "each issued token carries its own id")

	firstClaims, err := utils.ParseToken(first)
	require.NoError(t, err)
	secondClaims, err := utils.ParseToken(second)
	require.NoError(t, err)
	assert.NotEmpty(t, firstClaims.ID)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)

	utils.BlacklistToken(first, time.Now().Add(time.Hour))
	assert.True(t, utils.IsTokenBlacklisted(first))
	assert.False(t, utils.IsTokenBlacklisted(second), "revocation is per token, not per subject")
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := utils.GenerateToken(7, -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseToken(token)
	require.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := utils.ParseToken("not.a.token")
	require.Error(t, err)
}

func TestForeignSignatureRejected(t *testing.T) {
	claims := utils.Claims{
		UserID: 9,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = utils.ParseToken(forged)
	require.Error(t, err)
}
