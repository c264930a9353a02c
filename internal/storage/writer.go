package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Tx is the part of a database transaction a Writer needs to finish it.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to a single database transaction.
type Writer struct {
	tx           Tx
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
	Users        sqlconfig.IUserTable
}

func NewWriter(tx bob.Tx) *Writer {
	return NewWriterWithTables(tx,
		sqlconfig.NewTransactionsTable(tx),
		sqlconfig.NewBudgetsTable(tx),
		sqlconfig.NewUsersTable(tx),
	)
}

// NewWriterWithTables assembles a Writer from explicit table implementations.
func NewWriterWithTables(
	tx Tx,
	transactions sqlconfig.ITransactionTable,
	budgets sqlconfig.IBudgetTable,
	users sqlconfig.IUserTable,
) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Budgets:      budgets,
		Users:        users,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
