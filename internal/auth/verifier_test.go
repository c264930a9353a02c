package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthenticate_NoHeader(t *testing.T) {
	_, err := NewVerifier(testSecret, "").Authenticate("")
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Equal(t, "No token provided", err.Error())
}

func TestAuthenticate_Malformed(t *testing.T) {
	verifier := NewVerifier(testSecret, "")

	for _, header := range []string{
		"Bearer",
		"Token abc",
		"bearer abc",
		"Bearer abc def",
		"Bearer  abc",
	} {
		_, err := verifier.Authenticate(header)
		assert.ErrorIs(t, err, ErrMalformedToken, header)
	}
}

func TestAuthenticate_Valid(t *testing.T) {
	token := signToken(t, testSecret, Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	userID, err := NewVerifier(testSecret, "").Authenticate("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestVerify_NumericID(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"id": 42})

	userID, err := NewVerifier(testSecret, "").Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", userID)
}

func TestVerify_SubjectFallback(t *testing.T) {
	token := signToken(t, testSecret, jwt.RegisteredClaims{Subject: "user-7"})

	userID, err := NewVerifier(testSecret, "").Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-7", userID)
}

func TestVerify_MissingUserID(t *testing.T) {
	token := signToken(t, testSecret, jwt.RegisteredClaims{})

	_, err := NewVerifier(testSecret, "").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", Claims{UserID: "user-1"})

	_, err := NewVerifier(testSecret, "").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Tampered(t *testing.T) {
	token := signToken(t, testSecret, Claims{UserID: "user-1"})
	tampered := token[:len(token)-2] + "xx"

	_, err := NewVerifier(testSecret, "").Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	token := signToken(t, testSecret, Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := NewVerifier(testSecret, "").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Issuer(t *testing.T) {
	verifier := NewVerifier(testSecret, "finance-auth")

	good := signToken(t, testSecret, Claims{UserID: "user-1", RegisteredClaims: jwt.RegisteredClaims{Issuer: "finance-auth"}})
	userID, err := verifier.Verify(good)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	bad := signToken(t, testSecret, Claims{UserID: "user-1", RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else"}})
	_, err = verifier.Verify(bad)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_EmptySecretFailsClosed(t *testing.T) {
	token := signToken(t, testSecret, Claims{UserID: "user-1"})

	_, err := NewVerifier("", "").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewVerifier(testSecret, "").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
