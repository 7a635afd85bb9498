package session

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInspectExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "4", "exp": exp.Unix()})

	got, err := InspectExpiry(token)
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))
}

func TestInspectExpiryNoClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "4"})

	_, err := InspectExpiry(token)
	assert.Error(t, err)
}

func TestInspectExpiryGarbage(t *testing.T) {
	_, err := InspectExpiry("not-a-jwt")
	assert.Error(t, err)
}
