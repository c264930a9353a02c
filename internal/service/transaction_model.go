package service

import (
	"time"

	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ParseTransactionType reports whether s names a known transaction type.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(s) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return TransactionType(s), true
	}
	return "", false
}

// RecurrenceInterval is the period a recurring transaction repeats with.
type RecurrenceInterval string

const (
	RecurrenceWeekly  RecurrenceInterval = "weekly"
	RecurrenceMonthly RecurrenceInterval = "monthly"
)

// ParseRecurrenceInterval reports whether s names a supported interval.
func ParseRecurrenceInterval(s string) (RecurrenceInterval, bool) {
	switch RecurrenceInterval(s) {
	case RecurrenceWeekly, RecurrenceMonthly:
		return RecurrenceInterval(s), true
	}
	return "", false
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	UserID      string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Date        time.Time
	Note        *string
	IsRecurring bool
	Interval    *RecurrenceInterval
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction is the input for creating a transaction. A zero Date means
// today.
type NewTransaction struct {
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Date        time.Time
	Note        *string
	IsRecurring bool
	Interval    *RecurrenceInterval
}

// TransactionChanges lists the fields to change; nil fields are left alone.
// Note is left alone when unset and cleared when null.
type TransactionChanges struct {
	Amount      *decimal.Decimal
	Type        *TransactionType
	Category    *string
	Date        *time.Time
	Note        omitnull.Val[string]
	IsRecurring *bool
	Interval    *RecurrenceInterval
}

// TransactionQuery holds the optional list filters. From and To are
// inclusive.
type TransactionQuery struct {
	Type     *TransactionType
	Category *string
	From     *time.Time
	To       *time.Time
}

// Summary is the all-time income and expense position of a user.
type Summary struct {
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	NetSavings decimal.Decimal
}

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	tx := Transaction{
		ID:          row.ID,
		UserID:      row.UserID,
		Amount:      row.Amount,
		Type:        TransactionType(row.Type),
		Category:    row.Category,
		Date:        row.Date,
		IsRecurring: row.IsRecurring,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if note, ok := row.Note.Get(); ok {
		tx.Note = &note
	}
	if interval, ok := row.Interval.Get(); ok {
		i := RecurrenceInterval(interval)
		tx.Interval = &i
	}
	return tx
}

func transactionsFromStorage(rows []*sqlconfig.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted
}

func categoryTotalsFromStorage(rows []*sqlconfig.CategoryTotal) []CategoryTotal {
	converted := make([]CategoryTotal, len(rows))
	for i, row := range rows {
		converted[i] = CategoryTotal{Category: row.Category, Total: row.Total}
	}
	return converted
}
