package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// GenerateRecurring inserts every due copy in a single transaction, so a
// failure part way through leaves none of them behind.
type GenerateRecurring struct {
	Creates []*sqlconfig.TransactionCreate

	Created []*sqlconfig.Transaction
}

func (a *GenerateRecurring) Perform(ctx context.Context, writer *storage.Writer) error {
	created := make([]*sqlconfig.Transaction, 0, len(a.Creates))
	for _, create := range a.Creates {
		row, err := writer.Transactions.Insert(ctx, create)
		if err != nil {
			return err
		}
		created = append(created, row)
	}
	a.Created = created
	return nil
}
