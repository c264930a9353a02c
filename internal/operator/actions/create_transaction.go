package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateTransaction registers the owner if needed and inserts one transaction.
type CreateTransaction struct {
	Create *sqlconfig.TransactionCreate

	Result *sqlconfig.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Users.Ensure(ctx, a.Create.UserID); err != nil {
		return err
	}

	row, err := writer.Transactions.Insert(ctx, a.Create)
	if err != nil {
		return err
	}
	a.Result = row
	return nil
}
