package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type noopTx struct{}

func (noopTx) Commit(context.Context) error   { return nil }
func (noopTx) Rollback(context.Context) error { return nil }

type testTables struct {
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
	users        *sqlconfig.MockIUserTable
}

func newTestWriter(t *testing.T) (*storage.Writer, testTables) {
	t.Helper()
	tables := testTables{
		transactions: sqlconfig.NewMockITransactionTable(t),
		budgets:      sqlconfig.NewMockIBudgetTable(t),
		users:        sqlconfig.NewMockIUserTable(t),
	}
	writer := storage.NewWriterWithTables(noopTx{}, tables.transactions, tables.budgets, tables.users)
	return writer, tables
}

func TestCreateTransaction_EnsuresUserThenInserts(t *testing.T) {
	writer, tables := newTestWriter(t)

	create := &sqlconfig.TransactionCreate{
		UserID:   "user-1",
		Amount:   decimal.RequireFromString("12.50"),
		Type:     "expense",
		Category: "food",
		Date:     time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC),
	}
	row := &sqlconfig.Transaction{ID: uuid.Must(uuid.NewV4()), UserID: "user-1"}

	tables.users.EXPECT().Ensure(mock.Anything, "user-1").Return(nil)
	tables.transactions.EXPECT().Insert(mock.Anything, create).Return(row, nil)

	action := &CreateTransaction{Create: create}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, row, action.Result)
}

func TestCreateTransaction_EnsureFails(t *testing.T) {
	writer, tables := newTestWriter(t)

	tables.users.EXPECT().Ensure(mock.Anything, "user-1").Return(errors.New("ensure failed"))

	action := &CreateTransaction{Create: &sqlconfig.TransactionCreate{UserID: "user-1"}}
	err := action.Perform(context.Background(), writer)

	assert.EqualError(t, err, "ensure failed")
	assert.Nil(t, action.Result)
	tables.transactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUpdateTransaction_NotOwned(t *testing.T) {
	writer, tables := newTestWriter(t)

	id := uuid.Must(uuid.NewV4())
	update := &sqlconfig.TransactionUpdate{Category: omit.From("rent")}
	tables.transactions.EXPECT().Update(mock.Anything, "user-1", id, update).Return(nil, nil)

	action := &UpdateTransaction{UserID: "user-1", ID: id, Update: update}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Nil(t, action.Result)
}

func TestDeleteTransaction_ReportsDeleted(t *testing.T) {
	writer, tables := newTestWriter(t)

	id := uuid.Must(uuid.NewV4())
	tables.transactions.EXPECT().Delete(mock.Anything, "user-1", id).Return(true, nil)

	action := &DeleteTransaction{UserID: "user-1", ID: id}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.True(t, action.Deleted)
}

func TestCreateBudget_EnsuresUserThenInserts(t *testing.T) {
	writer, tables := newTestWriter(t)

	create := &sqlconfig.BudgetCreate{UserID: "user-1", Amount: 200, Category: "food", Month: "2025-09"}
	row := &sqlconfig.Budget{ID: uuid.Must(uuid.NewV4()), UserID: "user-1", Amount: 200}

	tables.users.EXPECT().Ensure(mock.Anything, "user-1").Return(nil)
	tables.budgets.EXPECT().Insert(mock.Anything, create).Return(row, nil)

	action := &CreateBudget{Create: create}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, row, action.Result)
}

func TestGenerateRecurring_InsertsEveryCopy(t *testing.T) {
	writer, tables := newTestWriter(t)

	first := &sqlconfig.TransactionCreate{UserID: "user-1", Category: "rent"}
	second := &sqlconfig.TransactionCreate{UserID: "user-1", Category: "gym"}
	tables.transactions.EXPECT().Insert(mock.Anything, first).Return(&sqlconfig.Transaction{Category: "rent"}, nil)
	tables.transactions.EXPECT().Insert(mock.Anything, second).Return(&sqlconfig.Transaction{Category: "gym"}, nil)

	action := &GenerateRecurring{Creates: []*sqlconfig.TransactionCreate{first, second}}
	require.NoError(t, action.Perform(context.Background(), writer))

	require.Len(t, action.Created, 2)
	assert.Equal(t, "rent", action.Created[0].Category)
	assert.Equal(t, "gym", action.Created[1].Category)
}

func TestGenerateRecurring_NothingDue(t *testing.T) {
	writer, _ := newTestWriter(t)

	action := &GenerateRecurring{}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.NotNil(t, action.Created)
	assert.Empty(t, action.Created)
}

func TestGenerateRecurring_StopsOnInsertError(t *testing.T) {
	writer, tables := newTestWriter(t)

	first := &sqlconfig.TransactionCreate{UserID: "user-1", Category: "rent"}
	second := &sqlconfig.TransactionCreate{UserID: "user-1", Category: "gym"}
	tables.transactions.EXPECT().Insert(mock.Anything, first).Return(nil, errors.New("insert failed"))

	action := &GenerateRecurring{Creates: []*sqlconfig.TransactionCreate{first, second}}
	err := action.Perform(context.Background(), writer)

	assert.EqualError(t, err, "insert failed")
	assert.Nil(t, action.Created)
}
