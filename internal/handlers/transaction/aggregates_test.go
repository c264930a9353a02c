package transaction

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/handlers/handlerstest"
	"github.com/carson-networks/finance-tracker/internal/service"
)

func TestHTTP_Summary(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetSummary", mock.Anything, "user-1").Return(&service.Summary{
		Income:     decimal.RequireFromString("3000"),
		Expenses:   decimal.RequireFromString("1250.50"),
		NetSavings: decimal.RequireFromString("1749.50"),
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/transactions/summary", handlerstest.AuthHeader("user-1"))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.JSONEq(t, `{"income":3000,"expenses":1250.5,"netSavings":1749.5}`, resp.Body.String())
}

func TestHTTP_Summary_ZeroFilled(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetSummary", mock.Anything, "user-1").Return(&service.Summary{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/transactions/summary", handlerstest.AuthHeader("user-1"))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"income":0,"expenses":0,"netSavings":0}`, resp.Body.String())
}

func TestHTTP_ByCategory_SortedByTotal(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTotalsByCategory", mock.Anything, "user-1", mock.MatchedBy(func(txType *service.TransactionType) bool {
		return txType != nil && *txType == service.TransactionTypeExpense
	})).Return([]service.CategoryTotal{
		{Category: "rent", Total: decimal.RequireFromString("950")},
		{Category: "food", Total: decimal.RequireFromString("120.40")},
		{Category: "fun", Total: decimal.RequireFromString("15")},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/transactions/by-category?type=expense", handlerstest.AuthHeader("user-1"))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body []CategoryTotal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 3)
	for i := 1; i < len(body); i++ {
		assert.GreaterOrEqual(t, body[i-1].Total, body[i].Total)
	}
	assert.Equal(t, "rent", body[0].Category)
}

func TestHTTP_ByCategory_NoTypeFilter(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTotalsByCategory", mock.Anything, "user-1", (*service.TransactionType)(nil)).
		Return([]service.CategoryTotal{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/transactions/by-category", handlerstest.AuthHeader("user-1"))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_GenerateRecurring(t *testing.T) {
	mockSvc := new(mockTransactionService)
	generated := sampleTransaction("user-1")
	mockSvc.On("GenerateRecurring", mock.Anything, "user-1").Return([]service.Transaction{*generated}, nil)

	resp := newTestAPI(t, mockSvc).Post("/transactions/generate-recurring", handlerstest.AuthHeader("user-1"))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body GenerateRecurringResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Recurring transactions generated", body.Message)
	require.Len(t, body.NewTransactions, 1)
	assert.Equal(t, generated.ID.String(), body.NewTransactions[0].ID)
	assert.False(t, body.NewTransactions[0].IsRecurring)
}

func TestHTTP_GenerateRecurring_NothingDue(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GenerateRecurring", mock.Anything, "user-1").Return([]service.Transaction{}, nil)

	resp := newTestAPI(t, mockSvc).Post("/transactions/generate-recurring", handlerstest.AuthHeader("user-1"))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Recurring transactions generated","newTransactions":[]}`, resp.Body.String())
}
