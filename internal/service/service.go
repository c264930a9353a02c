package service

import (
	"context"
	"errors"
	"time"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// ErrNotFound is returned when a record does not exist or belongs to another
// user. The two cases are deliberately indistinguishable to callers.
var ErrNotFound = errors.New("not found")

// actionProcessor runs a write action inside its own database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Budget      *BudgetService
	Dashboard   *DashboardService
}

// NewService creates a new Service reading from store and writing through
// processor. now is the clock every date computation is based on.
func NewService(store *storage.Storage, processor actionProcessor, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		Transaction: NewTransactionService(store, processor, now),
		Budget:      NewBudgetService(store, processor),
		Dashboard:   NewDashboardService(store, now),
	}
}

// civilDate drops the clock reading of t and keeps its calendar date as
// midnight UTC, the form dates are stored and compared in.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
