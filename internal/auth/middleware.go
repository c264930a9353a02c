package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

type userIDKey struct{}

// authenticator is the interface for resolving an Authorization header.
type authenticator interface {
	Authenticate(header string) (string, error)
}

// NewMiddleware rejects requests without a valid bearer token with 401 and
// otherwise exposes the user id through UserID.
func NewMiddleware(api huma.API, verifier authenticator) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		userID, err := verifier.Authenticate(ctx.Header("Authorization"))
		if err != nil {
			if logData := logging.GetLogData(ctx.Context()); logData != nil {
				logData.AddData("authError", err.Error())
			}
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, publicMessage(err))
			return
		}

		if logData := logging.GetLogData(ctx.Context()); logData != nil {
			logData.AddData("userID", userID)
		}
		next(huma.WithValue(ctx, userIDKey{}, userID))
	}
}

func publicMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoToken):
		return ErrNoToken.Error()
	case errors.Is(err, ErrMalformedToken):
		return ErrMalformedToken.Error()
	default:
		return ErrInvalidToken.Error()
	}
}

// WithUserID returns a copy of ctx carrying an authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated user id, or false when the request never
// passed the middleware.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}
