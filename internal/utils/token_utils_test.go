package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorTokenRoundTrip(t *testing.T) {
	tok, err := IssueOperatorToken("kasir-1", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseOperatorToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "kasir-1", claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
}

func TestParseOperatorToken_Rejects(t *testing.T) {
	good, err := IssueOperatorToken("kasir-1", "secret", time.Hour)
	require.NoError(t, err)
	expired, err := IssueOperatorToken("kasir-1", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseOperatorToken(good, "other")
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))

	_, err = ParseOperatorToken(expired, "secret")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))

	_, err = ParseOperatorToken("garbage", "secret")
	assert.Error(t, err)
}

func TestIssueOperatorToken_RequiresInputs(t *testing.T) {
	_, err := IssueOperatorToken("", "secret", time.Hour)
	assert.Error(t, err)
	_, err = IssueOperatorToken("kasir-1", "", time.Hour)
	assert.Error(t, err)
}
