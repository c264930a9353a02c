package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func storedBudget(userID string, amount float64, category, month string) *sqlconfig.Budget {
	return &sqlconfig.Budget{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		Amount:    amount,
		Category:  category,
		Month:     month,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func TestCreateBudget(t *testing.T) {
	svc, deps := newTestService(t, testNow)

	expected := &sqlconfig.BudgetCreate{UserID: "user-1", Amount: 200, Category: "food", Month: "2025-09"}
	deps.users.EXPECT().Ensure(mock.Anything, "user-1").Return(nil)
	deps.writeBudgets.EXPECT().Insert(mock.Anything, expected).Return(storedBudget("user-1", 200, "food", "2025-09"), nil)

	budget, err := svc.Budget.CreateBudget(context.Background(), "user-1", NewBudget{
		Amount:   200,
		Category: "food",
		Month:    "2025-09",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", budget.UserID)
	assert.Equal(t, 200.0, budget.Amount)
	assert.Equal(t, "2025-09", budget.Month)
}

func TestListBudgets(t *testing.T) {
	svc, deps := newTestService(t, testNow)

	deps.readBudgets.EXPECT().List(mock.Anything, "user-1").Return([]*sqlconfig.Budget{
		storedBudget("user-1", 200, "food", "2025-09"),
		storedBudget("user-1", 80, "fun", "2025-08"),
	}, nil)

	budgets, err := svc.Budget.ListBudgets(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, "food", budgets[0].Category)
	assert.Equal(t, "fun", budgets[1].Category)
}

func TestGetBudgetProgress_SpentAndRemaining(t *testing.T) {
	svc, deps := newTestService(t, testNow)

	budget := storedBudget("user-1", 200, "food", "2025-09")
	deps.readBudgets.EXPECT().FindByID(mock.Anything, budget.ID).Return(budget, nil)
	deps.readTransactions.EXPECT().Sum(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.UserID == "user-1" &&
			f.Type != nil && *f.Type == "expense" &&
			f.Category != nil && *f.Category == "food" &&
			f.From != nil && f.From.Equal(date(2025, 9, 1)) &&
			f.Before != nil && f.Before.Equal(date(2025, 10, 1)) &&
			f.To == nil
	})).Return(decimal.RequireFromString("50"), nil)

	progress, err := svc.Budget.GetBudgetProgress(context.Background(), "user-1", budget.ID)

	require.NoError(t, err)
	assert.Equal(t, budget.ID, progress.Budget.ID)
	assert.True(t, progress.Spent.Equal(decimal.NewFromInt(50)))
	assert.True(t, progress.Remaining.Equal(decimal.NewFromInt(150)))
}

func TestGetBudgetProgress_NoMatchingTransactions(t *testing.T) {
	svc, deps := newTestService(t, testNow)

	budget := storedBudget("user-1", 200, "food", "2025-09")
	deps.readBudgets.EXPECT().FindByID(mock.Anything, budget.ID).Return(budget, nil)
	deps.readTransactions.EXPECT().Sum(mock.Anything, mock.Anything).Return(decimal.Zero, nil)

	progress, err := svc.Budget.GetBudgetProgress(context.Background(), "user-1", budget.ID)

	require.NoError(t, err)
	assert.True(t, progress.Spent.IsZero())
	assert.True(t, progress.Remaining.Equal(decimal.NewFromInt(200)))
}

func TestGetBudgetProgress_Overspent(t *testing.T) {
	svc, deps := newTestService(t, testNow)

	budget := storedBudget("user-1", 100.5, "food", "2025-12")
	deps.readBudgets.EXPECT().FindByID(mock.Anything, budget.ID).Return(budget, nil)
	deps.readTransactions.EXPECT().Sum(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.From.Equal(date(2025, 12, 1)) && f.Before.Equal(date(2026, 1, 1))
	})).Return(decimal.RequireFromString("130.75"), nil)

	progress, err := svc.Budget.GetBudgetProgress(context.Background(), "user-1", budget.ID)

	require.NoError(t, err)
	assert.True(t, progress.Remaining.Equal(decimal.RequireFromString("-30.25")))
}

func TestGetBudgetProgress_OtherOwner(t *testing.T) {
	svc, deps := newTestService(t, testNow)

	budget := storedBudget("user-b", 200, "food", "2025-09")
	deps.readBudgets.EXPECT().FindByID(mock.Anything, budget.ID).Return(budget, nil)

	progress, err := svc.Budget.GetBudgetProgress(context.Background(), "user-a", budget.ID)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, progress)
}

func TestGetBudgetProgress_Missing(t *testing.T) {
	svc, deps := newTestService(t, testNow)

	id := uuid.Must(uuid.NewV4())
	deps.readBudgets.EXPECT().FindByID(mock.Anything, id).Return(nil, nil)

	progress, err := svc.Budget.GetBudgetProgress(context.Background(), "user-1", id)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, progress)
}

func TestGetBudgetProgress_StorageError(t *testing.T) {
	svc, deps := newTestService(t, testNow)

	id := uuid.Must(uuid.NewV4())
	deps.readBudgets.EXPECT().FindByID(mock.Anything, id).Return(nil, errors.New("database unavailable"))

	_, err := svc.Budget.GetBudgetProgress(context.Background(), "user-1", id)
	assert.EqualError(t, err, "database unavailable")
}

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange("2025-02")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 2, 1), start)
	assert.Equal(t, date(2025, 3, 1), end)

	start, end, err = MonthRange("2025-12")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 12, 1), start)
	assert.Equal(t, date(2026, 1, 1), end)

	for _, bad := range []string{"", "2025-13", "2025-9", "2025-09-01", "Sept"} {
		_, _, err := MonthRange(bad)
		assert.Error(t, err, bad)
	}
}
