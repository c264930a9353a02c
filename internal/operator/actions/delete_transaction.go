package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type DeleteTransaction struct {
	UserID string
	ID     uuid.UUID

	Deleted bool
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transactions.Delete(ctx, a.UserID, a.ID)
	if err != nil {
		return err
	}
	a.Deleted = deleted
	return nil
}
