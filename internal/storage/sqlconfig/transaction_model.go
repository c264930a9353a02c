package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage layout of a calendar date.
const DateLayout = "2006-01-02"

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID        `db:"id"`
	UserID      string           `db:"user_id"`
	Amount      decimal.Decimal  `db:"amount"`
	Type        string           `db:"type"`
	Category    string           `db:"category"`
	Date        time.Time        `db:"date"`
	Note        null.Val[string] `db:"note"`
	IsRecurring bool             `db:"is_recurring"`
	Interval    null.Val[string] `db:"recurrence_interval"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      string
	Amount      decimal.Decimal
	Type        string
	Category    string
	Date        time.Time
	Note        null.Val[string]
	IsRecurring bool
	Interval    null.Val[string]
}

// TransactionUpdate carries the fields to change. Unset fields keep their
// stored value; a null Note clears it.
type TransactionUpdate struct {
	Amount      omit.Val[decimal.Decimal]
	Type        omit.Val[string]
	Category    omit.Val[string]
	Date        omit.Val[time.Time]
	Note        omitnull.Val[string]
	IsRecurring omit.Val[bool]
	Interval    omit.Val[string]
}

// TransactionFilter narrows list and aggregate queries. UserID is mandatory;
// every other field is optional. From and To are inclusive dates, Before is
// an exclusive upper bound.
type TransactionFilter struct {
	UserID        string
	Type          *string
	Category      *string
	From          *time.Time
	To            *time.Time
	Before        *time.Time
	RecurringOnly bool
}

// CategoryTotal is one row of a per-category aggregate.
type CategoryTotal struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
// Lookups scoped by user return nil without error when no row matches.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, userID string, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Sum(ctx context.Context, filter *TransactionFilter) (decimal.Decimal, error)
	SumByCategory(ctx context.Context, filter *TransactionFilter) ([]*CategoryTotal, error)
}
