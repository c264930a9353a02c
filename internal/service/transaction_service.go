package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor actionProcessor
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor, now func() time.Time) *TransactionService {
	return &TransactionService{storage: store, processor: processor, now: now}
}

// CreateTransaction stores a new transaction owned by userID.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, in NewTransaction) (*Transaction, error) {
	date := in.Date
	if date.IsZero() {
		date = s.now()
	}

	action := &actions.CreateTransaction{
		Create: &sqlconfig.TransactionCreate{
			UserID:      userID,
			Amount:      in.Amount,
			Type:        string(in.Type),
			Category:    in.Category,
			Date:        civilDate(date),
			Note:        null.FromPtr(in.Note),
			IsRecurring: in.IsRecurring,
			Interval:    intervalToStorage(in.Interval),
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	tx := transactionFromStorage(action.Result)
	return &tx, nil
}

// ListTransactions returns the user's transactions matching query, newest
// first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string, query TransactionQuery) ([]Transaction, error) {
	filter := &sqlconfig.TransactionFilter{
		UserID:   userID,
		Type:     typeToStorage(query.Type),
		Category: query.Category,
		From:     query.From,
		To:       query.To,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// GetTransaction returns one of the user's transactions, or ErrNotFound when
// the user owns none with that id.
func (s *TransactionService) GetTransaction(ctx context.Context, userID string, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	tx := transactionFromStorage(row)
	return &tx, nil
}

// UpdateTransaction applies changes to one of the user's transactions.
// Returns ErrNotFound when the user owns no transaction with that id.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID string, id uuid.UUID, changes TransactionChanges) (*Transaction, error) {
	update := &sqlconfig.TransactionUpdate{
		Amount:      omit.FromPtr(changes.Amount),
		Category:    omit.FromPtr(changes.Category),
		Note:        changes.Note,
		IsRecurring: omit.FromPtr(changes.IsRecurring),
	}
	if changes.Type != nil {
		update.Type = omit.From(string(*changes.Type))
	}
	if changes.Date != nil {
		update.Date = omit.From(civilDate(*changes.Date))
	}
	if changes.Interval != nil {
		update.Interval = omit.From(string(*changes.Interval))
	}

	action := &actions.UpdateTransaction{UserID: userID, ID: id, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	if action.Result == nil {
		return nil, ErrNotFound
	}

	tx := transactionFromStorage(action.Result)
	return &tx, nil
}

// DeleteTransaction removes one of the user's transactions. Returns
// ErrNotFound when there was nothing to delete.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID string, id uuid.UUID) error {
	action := &actions.DeleteTransaction{UserID: userID, ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return err
	}
	if !action.Deleted {
		return ErrNotFound
	}
	return nil
}

// GetSummary totals the user's income and expenses over all time.
func (s *TransactionService) GetSummary(ctx context.Context, userID string) (*Summary, error) {
	income, err := s.storage.Transactions.Sum(ctx, &sqlconfig.TransactionFilter{
		UserID: userID,
		Type:   typeToStorage(ptr(TransactionTypeIncome)),
	})
	if err != nil {
		return nil, err
	}

	expenses, err := s.storage.Transactions.Sum(ctx, &sqlconfig.TransactionFilter{
		UserID: userID,
		Type:   typeToStorage(ptr(TransactionTypeExpense)),
	})
	if err != nil {
		return nil, err
	}

	return &Summary{
		Income:     income,
		Expenses:   expenses,
		NetSavings: income.Sub(expenses),
	}, nil
}

// GetTotalsByCategory sums the user's transactions per category, optionally
// restricted to one type, largest total first.
func (s *TransactionService) GetTotalsByCategory(ctx context.Context, userID string, txType *TransactionType) ([]CategoryTotal, error) {
	rows, err := s.storage.Transactions.SumByCategory(ctx, &sqlconfig.TransactionFilter{
		UserID: userID,
		Type:   typeToStorage(txType),
	})
	if err != nil {
		return nil, err
	}
	return categoryTotalsFromStorage(rows), nil
}

// GenerateRecurring creates today's copy of every recurring transaction that
// is due. Calling it twice on the same day creates the copies twice.
func (s *TransactionService) GenerateRecurring(ctx context.Context, userID string) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:        userID,
		RecurringOnly: true,
	})
	if err != nil {
		return nil, err
	}

	today := civilDate(s.now())
	var creates []*sqlconfig.TransactionCreate
	for _, row := range rows {
		template := transactionFromStorage(row)
		if !isDue(template, today) {
			continue
		}
		creates = append(creates, &sqlconfig.TransactionCreate{
			UserID:      userID,
			Amount:      template.Amount,
			Type:        string(template.Type),
			Category:    template.Category,
			Date:        today,
			IsRecurring: false,
		})
	}
	if len(creates) == 0 {
		return []Transaction{}, nil
	}

	action := &actions.GenerateRecurring{Creates: creates}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionsFromStorage(action.Created), nil
}

func typeToStorage(t *TransactionType) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

func intervalToStorage(i *RecurrenceInterval) null.Val[string] {
	if i == nil {
		return null.Val[string]{}
	}
	return null.From(string(*i))
}

func ptr[T any](v T) *T {
	return &v
}
