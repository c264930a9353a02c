// Package handlers holds the request parsing and error mapping shared by the
// huma operation packages.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ErrNotANumber is returned by ParseAmount for values that are neither a JSON
// number nor a numeric string.
var ErrNotANumber = errors.New("not a number")

var validationStatus sync.Once

// UseBadRequestForValidation makes huma report request schema violations as
// 400 Bad Request, the status of every other validation failure.
func UseBadRequestForValidation() {
	validationStatus.Do(func() {
		newError := huma.NewError
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			if status == http.StatusUnprocessableEntity {
				status = http.StatusBadRequest
			}
			return newError(status, msg, errs...)
		}
	})
}

// UserID returns the caller authenticated by the auth middleware.
func UserID(ctx context.Context) (string, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return "", huma.Error401Unauthorized(auth.ErrNoToken.Error())
	}
	return userID, nil
}

// InternalError reports err to the client with its message unchanged.
func InternalError(ctx context.Context, err error) error {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, err.Error())
}

// ParseID parses a path id. Anything that is not a UUID cannot name a stored
// record, so it is reported with notFound.
func ParseID(raw string, notFound string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.Error404NotFound(notFound)
	}
	return id, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(field, raw string) (time.Time, error) {
	d, err := time.Parse(sqlconfig.DateLayout, raw)
	if err != nil {
		return time.Time{}, huma.Error400BadRequest(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	}
	return d, nil
}

// ParseAmount accepts an amount sent either as a JSON number or as a numeric
// string.
func ParseAmount(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		return decimal.NewFromString(v)
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	}
	return decimal.Zero, ErrNotANumber
}

// MissingAmount reports whether a required amount was left out. An empty
// string or a numeric zero counts as missing.
func MissingAmount(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	}
	return false
}

// FormatDate renders a stored date in its wire form.
func FormatDate(d time.Time) string {
	return d.Format(sqlconfig.DateLayout)
}

// FormatTimestamp renders a row timestamp in its wire form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Float converts an aggregate to the plain JSON number clients expect.
func Float(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
