package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage   *storage.Storage
	processor actionProcessor
}

func NewBudgetService(store *storage.Storage, processor actionProcessor) *BudgetService {
	return &BudgetService{storage: store, processor: processor}
}

// CreateBudget stores a new budget owned by userID.
func (s *BudgetService) CreateBudget(ctx context.Context, userID string, in NewBudget) (*Budget, error) {
	action := &actions.CreateBudget{
		Create: &sqlconfig.BudgetCreate{
			UserID:   userID,
			Amount:   in.Amount,
			Category: in.Category,
			Month:    in.Month,
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	budget := budgetFromStorage(action.Result)
	return &budget, nil
}

// ListBudgets returns every budget the user owns.
func (s *BudgetService) ListBudgets(ctx context.Context, userID string) ([]Budget, error) {
	rows, err := s.storage.Budgets.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = budgetFromStorage(row)
	}
	return budgets, nil
}

// GetBudgetProgress sums the user's expenses in the budget's category and
// month. A budget owned by someone else is reported as ErrNotFound.
func (s *BudgetService) GetBudgetProgress(ctx context.Context, userID string, id uuid.UUID) (*BudgetProgress, error) {
	row, err := s.storage.Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || row.UserID != userID {
		return nil, ErrNotFound
	}
	budget := budgetFromStorage(row)

	start, end, err := MonthRange(budget.Month)
	if err != nil {
		return nil, err
	}

	spent, err := s.storage.Transactions.Sum(ctx, &sqlconfig.TransactionFilter{
		UserID:   userID,
		Type:     typeToStorage(ptr(TransactionTypeExpense)),
		Category: &budget.Category,
		From:     &start,
		Before:   &end,
	})
	if err != nil {
		return nil, err
	}

	return &BudgetProgress{
		Budget:    budget,
		Spent:     spent,
		Remaining: decimal.NewFromFloat(budget.Amount).Sub(spent),
	}, nil
}
