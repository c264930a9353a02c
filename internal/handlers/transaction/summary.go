package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type SummaryResponse struct {
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	NetSavings float64 `json:"netSavings"`
}

type SummaryOutput struct {
	Body SummaryResponse
}

type summaryGetter interface {
	GetSummary(ctx context.Context, userID string) (*service.Summary, error)
}

// SummaryHandler handles GET /transactions/summary.
type SummaryHandler struct {
	TransactionService summaryGetter
}

func NewSummaryHandler(svc summaryGetter) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-summary",
		Method:      http.MethodGet,
		Path:        "/transactions/summary",
		Summary:     "All-time summary",
		Description: "Totals the caller's income and expenses across all transactions.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := h.TransactionService.GetSummary(ctx, userID)
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	return &SummaryOutput{Body: SummaryResponse{
		Income:     handlers.Float(summary.Income),
		Expenses:   handlers.Float(summary.Expenses),
		NetSavings: handlers.Float(summary.NetSavings),
	}}, nil
}
