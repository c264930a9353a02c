package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Dashboard is the month-to-date view of a user's finances.
type Dashboard struct {
	Month              string
	Income             decimal.Decimal
	Expenses           decimal.Decimal
	NetSavings         decimal.Decimal
	SpendingByCategory []CategoryTotal
}

type DashboardService struct {
	storage *storage.Storage
	now     func() time.Time
}

func NewDashboardService(store *storage.Storage, now func() time.Time) *DashboardService {
	return &DashboardService{storage: store, now: now}
}

// GetDashboard aggregates every transaction dated on or after the first day
// of the current month. There is no upper bound, so future-dated
// transactions are included.
func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	income, err := s.storage.Transactions.Sum(ctx, &sqlconfig.TransactionFilter{
		UserID: userID,
		Type:   typeToStorage(ptr(TransactionTypeIncome)),
		From:   &monthStart,
	})
	if err != nil {
		return nil, err
	}

	expenseFilter := &sqlconfig.TransactionFilter{
		UserID: userID,
		Type:   typeToStorage(ptr(TransactionTypeExpense)),
		From:   &monthStart,
	}
	expenses, err := s.storage.Transactions.Sum(ctx, expenseFilter)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.storage.Transactions.SumByCategory(ctx, expenseFilter)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Month:              fmt.Sprintf("%d-%d", now.Year(), int(now.Month())),
		Income:             income,
		Expenses:           expenses,
		NetSavings:         income.Sub(expenses),
		SpendingByCategory: categoryTotalsFromStorage(byCategory),
	}, nil
}
