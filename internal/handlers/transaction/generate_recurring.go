package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type GenerateRecurringResponse struct {
	Message         string        `json:"message"`
	NewTransactions []Transaction `json:"newTransactions"`
}

type GenerateRecurringOutput struct {
	Body GenerateRecurringResponse
}

type recurringGenerator interface {
	GenerateRecurring(ctx context.Context, userID string) ([]service.Transaction, error)
}

// GenerateRecurringHandler handles POST /transactions/generate-recurring.
type GenerateRecurringHandler struct {
	TransactionService recurringGenerator
}

func NewGenerateRecurringHandler(svc recurringGenerator) *GenerateRecurringHandler {
	return &GenerateRecurringHandler{TransactionService: svc}
}

func (h *GenerateRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-recurring-transactions",
		Method:      http.MethodPost,
		Path:        "/transactions/generate-recurring",
		Summary:     "Generate recurring transactions",
		Description: "Creates today's copy of every recurring transaction that is due. " +
			"Each call creates new copies, so calling it twice on the same day duplicates them.",
		Tags: []string{"Transactions"},
	}, h.handle)
}

func (h *GenerateRecurringHandler) handle(ctx context.Context, _ *struct{}) (*GenerateRecurringOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := h.TransactionService.GenerateRecurring(ctx, userID)
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	if logData != nil {
		logData.AddData("generatedCount", len(created))
	}

	return &GenerateRecurringOutput{Body: GenerateRecurringResponse{
		Message:         "Recurring transactions generated",
		NewTransactions: fromServiceList(created),
	}}, nil
}
