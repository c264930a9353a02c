package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
// Field checks happen in parseCreateTransactionInput so that they answer 400.
type CreateTransactionBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Amount      any      `json:"amount,omitempty" doc:"Decimal amount, as a number or a numeric string"`
	Type        string   `json:"type,omitempty" doc:"income or expense"`
	Category    string   `json:"category,omitempty"`
	Date        string   `json:"date,omitempty" doc:"YYYY-MM-DD transaction date, defaults to today"`
	Note        *string  `json:"note,omitempty"`
	IsRecurring bool     `json:"isRecurring,omitempty" doc:"Marks the transaction as a recurring template"`
	Interval    string   `json:"interval,omitempty" doc:"weekly or monthly"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body TransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID string, in service.NewTransaction) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions",
		Summary:     "Create transaction",
		Description: "Records an income or expense for the authenticated user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.NewTransaction, error) {
	body := input.Body
	if handlers.MissingAmount(body.Amount) || body.Type == "" || body.Category == "" {
		return service.NewTransaction{}, huma.Error400BadRequest(msgRequired)
	}

	txType, ok := service.ParseTransactionType(body.Type)
	if !ok {
		return service.NewTransaction{}, huma.Error400BadRequest(msgInvalidType)
	}

	amount, err := handlers.ParseAmount(body.Amount)
	if err != nil {
		return service.NewTransaction{}, huma.Error400BadRequest(msgInvalidAmount)
	}

	tx := service.NewTransaction{
		Amount:      amount,
		Type:        txType,
		Category:    body.Category,
		Note:        body.Note,
		IsRecurring: body.IsRecurring,
	}

	if body.Date != "" {
		tx.Date, err = handlers.ParseDate("date", body.Date)
		if err != nil {
			return service.NewTransaction{}, err
		}
	}

	if body.Interval != "" {
		interval, ok := service.ParseRecurrenceInterval(body.Interval)
		if !ok {
			return service.NewTransaction{}, huma.Error400BadRequest(msgInvalidInterval)
		}
		tx.Interval = &interval
	}

	return tx, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	newTransaction, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	tx, err := h.TransactionService.CreateTransaction(ctx, userID, newTransaction)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	if logData != nil {
		logData.AddData("transactionID", tx.ID.String())
	}

	return &CreateTransactionOutput{Body: TransactionResponse{
		Message:     "Transaction added",
		Transaction: fromService(*tx),
	}}, nil
}
