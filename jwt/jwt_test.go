package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	exp := time.Now().Add(TokenTTL).Unix()
	token, err := GenerateToken("secret", 42, "admin", exp)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := VerifyToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "admin", role)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	exp := time.Now().Add(TokenTTL).Unix()
	token, err := GenerateToken("secret", 42, "customer", exp)
	require.NoError(t, err)

	_, _, err = VerifyToken("other-secret", token)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Unix()
	token, err := GenerateToken("secret", 42, "customer", exp)
	require.NoError(t, err)

	_, _, err = VerifyToken("secret", token)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, _, err := VerifyToken("secret", "not-a-token")
	assert.Error(t, err)
}

func TestVerifyToken_MalformedClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	// Correctly signed tokens whose id claim is missing or not a number must
	// come back as errors, not panics.
	for name, claims := range map[string]jwtlib.MapClaims{
		"missing id":     {"role": "customer", "exp": exp},
		"non-numeric id": {"id": "42", "role": "customer", "exp": exp},
		"id is a bool":   {"id": true, "role": "customer", "exp": exp},
	} {
		t.Run(name, func(t *testing.T) {
			token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("secret"))
			require.NoError(t, err)

			_, _, err = VerifyToken("secret", token)
			assert.ErrorIs(t, err, jwtlib.ErrTokenInvalidClaims)
		})
	}
}
