package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const budgetsTableName = "budgets"

var budgetColumns = []any{"id", "user_id", "amount", "category", "month", "created_at", "updated_at"}

var _ IBudgetTable = (*BudgetsTable)(nil)

type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

// FindByID retrieves a budget by primary key regardless of owner. Callers
// compare UserID themselves. Returns nil when no row exists.
func (t *BudgetsTable) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From(budgetsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find budget %s: %w", id, err)
	}
	return row, nil
}

// Insert creates a new budget and returns the stored row.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	q := psql.Insert(
		im.Into(budgetsTableName, "user_id", "amount", "category", "month"),
		im.Values(psql.Arg(create.UserID, create.Amount, create.Category, create.Month)),
		im.Returning(budgetColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, fmt.Errorf("insert budget: %w", err)
	}
	return row, nil
}

// List returns every budget owned by userID, most recent month first.
func (t *BudgetsTable) List(ctx context.Context, userID string) ([]*Budget, error) {
	q := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From(budgetsTableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("month")).Desc(),
		sm.OrderBy(psql.Quote("category")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return rows, nil
}
