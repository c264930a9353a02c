package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{
	"id", "user_id", "amount", "type", "category", "date", "note",
	"is_recurring", "recurrence_interval", "created_at", "updated_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable binds the table to a pool or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves one of the user's transactions by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, userID string, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction %s: %w", id, err)
	}
	return row, nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into(transactionsTableName,
			"user_id", "amount", "type", "category", "date", "note", "is_recurring", "recurrence_interval"),
		im.Values(psql.Arg(
			create.UserID,
			create.Amount.Round(2),
			create.Type,
			create.Category,
			create.Date.Format(DateLayout),
			create.Note,
			create.IsRecurring,
			create.Interval,
		)),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return row, nil
}

// Update applies the set fields of update to one of the user's transactions.
func (t *TransactionsTable) Update(ctx context.Context, userID string, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(transactionsTableName),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v.Round(2)))
	}
	if v, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(v))
	}
	if v, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(v))
	}
	if v, ok := update.Date.Get(); ok {
		queryMods = append(queryMods, um.SetCol("date").ToArg(v.Format(DateLayout)))
	}
	if v, ok := update.Note.GetNull(); ok {
		queryMods = append(queryMods, um.SetCol("note").ToArg(v))
	}
	if v, ok := update.IsRecurring.Get(); ok {
		queryMods = append(queryMods, um.SetCol("is_recurring").ToArg(v))
	}
	if v, ok := update.Interval.Get(); ok {
		queryMods = append(queryMods, um.SetCol("recurrence_interval").ToArg(v))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(transactionColumns...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update transaction %s: %w", id, err)
	}
	return row, nil
}

// Delete removes one of the user's transactions and reports whether a row
// was deleted.
func (t *TransactionsTable) Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, fmt.Errorf("delete transaction %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return affected > 0, nil
}

// List returns the user's transactions matching filter, newest date first and
// most recently created first within a date.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := append(filterMods(filter),
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return rows, nil
}

// Sum totals the amount of the matching transactions, zero when none match.
func (t *TransactionsTable) Sum(ctx context.Context, filter *TransactionFilter) (decimal.Decimal, error) {
	queryMods := append(filterMods(filter),
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From(transactionsTableName),
	)
	total, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum transactions: %w", err)
	}
	return total, nil
}

// SumByCategory totals the matching transactions per category, largest total
// first.
func (t *TransactionsTable) SumByCategory(ctx context.Context, filter *TransactionFilter) ([]*CategoryTotal, error) {
	queryMods := append(filterMods(filter),
		sm.Columns(psql.Quote("category"), psql.Raw("SUM(amount) AS total")),
		sm.From(transactionsTableName),
		sm.GroupBy(psql.Quote("category")),
		sm.OrderBy("total").Desc(),
		sm.OrderBy(psql.Quote("category")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*CategoryTotal]())
	if err != nil {
		return nil, fmt.Errorf("sum transactions by category: %w", err)
	}
	return rows, nil
}

func filterMods(filter *TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.Type != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
	}
	if filter.Category != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	if filter.From != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(dateArg(*filter.From))))
	}
	if filter.To != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").LTE(dateArg(*filter.To))))
	}
	if filter.Before != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").LT(dateArg(*filter.Before))))
	}
	if filter.RecurringOnly {
		queryMods = append(queryMods, sm.Where(psql.Quote("is_recurring").EQ(psql.Arg(true))))
	}
	return queryMods
}

func dateArg(date time.Time) bob.Expression {
	return psql.Raw("?::date", date.Format(DateLayout))
}
