// Package auth verifies bearer tokens and carries the authenticated user id
// through the request context.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken        = errors.New("No token provided")
	ErrMalformedToken = errors.New("Malformed token")
	ErrInvalidToken   = errors.New("Invalid or expired token")
)

// Claims is the token payload minted by the login service. The user id lives
// in the id claim; sub is accepted as a fallback.
type Claims struct {
	UserID any `json:"id,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HMAC-signed bearer tokens. It holds no mutable state and
// is safe for concurrent use.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier builds a verifier for secret. A non-empty issuer is enforced
// against the iss claim. An empty secret yields a verifier that rejects
// every token.
func NewVerifier(secret, issuer string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

// Authenticate checks an Authorization header value and returns the user id
// it carries.
func (v *Verifier) Authenticate(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrMalformedToken
	}

	return v.Verify(parts[1])
}

// Verify validates a raw token string.
func (v *Verifier) Verify(token string) (string, error) {
	if len(v.secret) == 0 {
		return "", ErrInvalidToken
	}

	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID := claimString(claims.UserID)
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return "", fmt.Errorf("%w: token carries no user id", ErrInvalidToken)
	}

	return userID, nil
}

func claimString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
