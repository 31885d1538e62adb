package auth

import (
	"errors"
	"testing"
	"time"

	"listingadmin/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	now := time.Now()

	tok, err := GenerateToken("session-123", secret, now, now.Add(time.Hour))
	require.NoError(t, err)

	id, err := GetSessionIDFromToken(tok, secret, time.Now)
	require.NoError(t, err)
	assert.Equal(t, "session-123", id)
}

func TestGetSessionIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	now := time.Now()

	tok, err := GenerateToken("s1", secret, now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)

	_, err = GetSessionIDFromToken(tok, secret, time.Now)
	assert.True(t, errors.Is(err, common.ErrInvalidToken), "got %v", err)
}

func TestGetSessionIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tok, err := GenerateToken("s2", []byte("right-secret"), now, now.Add(time.Hour))
	require.NoError(t, err)

	_, err = GetSessionIDFromToken(tok, []byte("wrong-secret"), time.Now)
	assert.True(t, errors.Is(err, common.ErrInvalidToken), "got %v", err)
}

func TestGetSessionIDFromToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "valid", "not.a.jwt"} {
		_, err := GetSessionIDFromToken(tok, []byte("k"), time.Now)
		assert.Error(t, err, tok)
	}
}

func TestGetSessionIDFromToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "s3",
			Subject:   tokenSubject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = GetSessionIDFromToken(tok, []byte("k"), time.Now)
	assert.Error(t, err)
}

func TestGetSessionIDFromToken_UsesClock(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	issued := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tok, err := GenerateToken("s4", secret, issued, issued.Add(time.Hour))
	require.NoError(t, err)

	_, err = GetSessionIDFromToken(tok, secret, func() time.Time { return issued.Add(30 * time.Minute) })
	assert.NoError(t, err)

	_, err = GetSessionIDFromToken(tok, secret, func() time.Time { return issued.Add(2 * time.Hour) })
	assert.Error(t, err)
}
