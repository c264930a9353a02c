package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Type     string `query:"type" doc:"income or expense; any other value is ignored"`
	From     string `query:"from" doc:"Inclusive YYYY-MM-DD lower bound"`
	To       string `query:"to" doc:"Inclusive YYYY-MM-DD upper bound"`
	Category string `query:"category"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID string, query service.TransactionQuery) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns the caller's transactions, newest date first and most recently created first within a date.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses the optional filters. An unknown type is
// dropped rather than rejected.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionQuery, error) {
	var query service.TransactionQuery

	if txType, ok := service.ParseTransactionType(input.Type); ok {
		query.Type = &txType
	}
	if input.Category != "" {
		category := input.Category
		query.Category = &category
	}
	if input.From != "" {
		from, err := handlers.ParseDate("from", input.From)
		if err != nil {
			return service.TransactionQuery{}, err
		}
		query.From = &from
	}
	if input.To != "" {
		to, err := handlers.ParseDate("to", input.To)
		if err != nil {
			return service.TransactionQuery{}, err
		}
		query.To = &to
	}

	return query, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, userID, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	return &ListTransactionsOutput{Body: fromServiceList(transactions)}, nil
}
