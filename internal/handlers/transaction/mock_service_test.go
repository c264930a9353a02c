package transaction

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/handlers/handlerstest"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockTransactionService implements every transaction interface the handlers
// depend on.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, userID string, in service.NewTransaction) (*service.Transaction, error) {
	args := m.Called(ctx, userID, in)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, userID string, query service.TransactionQuery) ([]service.Transaction, error) {
	args := m.Called(ctx, userID, query)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, userID string, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, userID, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, userID string, id uuid.UUID, changes service.TransactionChanges) (*service.Transaction, error) {
	args := m.Called(ctx, userID, id, changes)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, userID string, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockTransactionService) GetSummary(ctx context.Context, userID string) (*service.Summary, error) {
	args := m.Called(ctx, userID)
	summary, _ := args.Get(0).(*service.Summary)
	return summary, args.Error(1)
}

func (m *mockTransactionService) GetTotalsByCategory(ctx context.Context, userID string, txType *service.TransactionType) ([]service.CategoryTotal, error) {
	args := m.Called(ctx, userID, txType)
	totals, _ := args.Get(0).([]service.CategoryTotal)
	return totals, args.Error(1)
}

func (m *mockTransactionService) GenerateRecurring(ctx context.Context, userID string) ([]service.Transaction, error) {
	args := m.Called(ctx, userID)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

// newTestAPI registers every transaction handler against an authenticated
// humatest API.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	api := handlerstest.NewAPI(t)
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewSummaryHandler(svc).Register(api)
	NewByCategoryHandler(svc).Register(api)
	NewGenerateRecurringHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}
