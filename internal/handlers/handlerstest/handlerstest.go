// Package handlerstest builds humatest APIs that authenticate requests the
// way the production auth middleware does, without signing tokens.
package handlerstest

import (
	"errors"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers"
)

// headerAuthenticator treats the bearer token itself as the user id.
type headerAuthenticator struct{}

func (headerAuthenticator) Authenticate(header string) (string, error) {
	if header == "" {
		return "", auth.ErrNoToken
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", auth.ErrMalformedToken
	}
	if token == "expired" {
		return "", errors.Join(auth.ErrInvalidToken, errors.New("token is expired"))
	}
	return token, nil
}

// NewAPI returns a test API with the auth middleware installed and the
// production validation status.
func NewAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	handlers.UseBadRequestForValidation()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.NewMiddleware(api, headerAuthenticator{}))
	return api
}

// AuthHeader is the Authorization header argument for humatest requests made
// as userID.
func AuthHeader(userID string) string {
	return "Authorization: Bearer " + userID
}
