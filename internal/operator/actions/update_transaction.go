package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// UpdateTransaction applies a partial update to one of the user's
// transactions. Result stays nil when the user owns no such transaction.
type UpdateTransaction struct {
	UserID string
	ID     uuid.UUID
	Update *sqlconfig.TransactionUpdate

	Result *sqlconfig.Transaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Update(ctx, a.UserID, a.ID, a.Update)
	if err != nil {
		return err
	}
	a.Result = row
	return nil
}
