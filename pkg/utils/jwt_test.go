//go:build !integration

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWTRoundTrip(t *testing.T) {
	now := time.Now()
	id := NewSessionID()

	token, exp, err := GenerateSessionJWT("secret", id, time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	claims, err := ParseSessionJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.SessionID)
}

func TestParseSessionJWT_Rejects(t *testing.T) {
	token, _, err := GenerateSessionJWT("secret", "abc", time.Hour, time.Now())
	require.NoError(t, err)

	_, err = ParseSessionJWT("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, _, err := GenerateSessionJWT("secret", "abc", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = ParseSessionJWT("secret", expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseSessionJWT("secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewSessionIDIsUnique(t *testing.T) {
	assert.NotEqual(t, NewSessionID(), NewSessionID())
}
