package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateBudget struct {
	Create *sqlconfig.BudgetCreate

	Result *sqlconfig.Budget
}

func (a *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Users.Ensure(ctx, a.Create.UserID); err != nil {
		return err
	}

	row, err := writer.Budgets.Insert(ctx, a.Create)
	if err != nil {
		return err
	}
	a.Result = row
	return nil
}
