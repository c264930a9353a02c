package service

import (
	"context"
	"testing"
	"time"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type noopTx struct{}

func (noopTx) Commit(context.Context) error   { return nil }
func (noopTx) Rollback(context.Context) error { return nil }

// inlineProcessor performs actions on the caller's goroutine against mock
// tables instead of handing them to the worker pool.
type inlineProcessor struct {
	writer *storage.Writer
	err    error
	calls  int
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.calls++
	if p.err != nil {
		return p.err
	}
	return action.Perform(ctx, p.writer)
}

type testDeps struct {
	readTransactions  *sqlconfig.MockITransactionTable
	readBudgets       *sqlconfig.MockIBudgetTable
	writeTransactions *sqlconfig.MockITransactionTable
	writeBudgets      *sqlconfig.MockIBudgetTable
	users             *sqlconfig.MockIUserTable
	processor         *inlineProcessor
}

func newTestService(t *testing.T, now time.Time) (*Service, *testDeps) {
	t.Helper()
	deps := &testDeps{
		readTransactions:  sqlconfig.NewMockITransactionTable(t),
		readBudgets:       sqlconfig.NewMockIBudgetTable(t),
		writeTransactions: sqlconfig.NewMockITransactionTable(t),
		writeBudgets:      sqlconfig.NewMockIBudgetTable(t),
		users:             sqlconfig.NewMockIUserTable(t),
	}
	deps.processor = &inlineProcessor{
		writer: storage.NewWriterWithTables(noopTx{}, deps.writeTransactions, deps.writeBudgets, deps.users),
	}

	store := &storage.Storage{
		Transactions: deps.readTransactions,
		Budgets:      deps.readBudgets,
	}
	return NewService(store, deps.processor, func() time.Time { return now }), deps
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}
