package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseRoundtrip(t *testing.T) {
	signed, expireAt, err := Sign("secret", time.Hour, 42, "alice", "user")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expireAt, 5*time.Second)

	claims, err := Parse(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, _, err := Sign("secret", time.Hour, 1, "alice", "user")
	require.NoError(t, err)

	_, err = Parse(signed, "other-secret")
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	signed, _, err := Sign("secret", time.Millisecond, 1, "alice", "user")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = Parse(signed, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestBuildPairUsesDistinctSecrets(t *testing.T) {
	pair, _, err := BuildPair("access", "refresh", time.Hour, 24*time.Hour, 7, "bob", "admin")
	require.NoError(t, err)

	_, err = Parse(pair.AccessToken, "access")
	require.NoError(t, err)
	_, err = Parse(pair.AccessToken, "refresh")
	assert.Error(t, err)

	claims, err := Parse(pair.RefreshToken, "refresh")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestSignRejectsEmptySecret(t *testing.T) {
	_, _, err := Sign("", time.Hour, 1, "a", "user")
	assert.Error(t, err)
}
