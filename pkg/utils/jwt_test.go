package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndParseJWTToken(t *testing.T) {
	token, err := CreateJWTToken("652f8a7b9d3e2c1a4b5d6e7f", "test vendor", "secret")
	require.NoError(t, err)

	userID, name, err := ParseJWTToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "652f8a7b9d3e2c1a4b5d6e7f", userID)
	assert.Equal(t, "test vendor", name)
}

func TestParseJWTToken_WrongSecret(t *testing.T) {
	token, err := CreateJWTToken("652f8a7b9d3e2c1a4b5d6e7f", "test vendor", "secret")
	require.NoError(t, err)

	_, _, err = ParseJWTToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTToken_Malformed(t *testing.T) {
	_, _, err := ParseJWTToken("not-a-token", "secret")
	assert.Error(t, err)
}

func TestParseJWTToken_Expired(t *testing.T) {
	claims := jwt.MapClaims{}
	claims["userID"] = "652f8a7b9d3e2c1a4b5d6e7f"
	claims["name"] = "test vendor"
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, _, err = ParseJWTToken(expired, "secret")
	assert.Error(t, err)
}

func TestParseJWTToken_WrongSigningMethod(t *testing.T) {
	claims := jwt.MapClaims{"userID": "652f8a7b9d3e2c1a4b5d6e7f"}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = ParseJWTToken(unsigned, "secret")
	assert.Error(t, err)
}
