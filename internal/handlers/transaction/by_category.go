package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CategoryTotal is one category and the sum of its amounts.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type ByCategoryInput struct {
	Type string `query:"type" doc:"income or expense; any other value is ignored"`
}

type ByCategoryOutput struct {
	Body []CategoryTotal
}

type categoryTotaler interface {
	GetTotalsByCategory(ctx context.Context, userID string, txType *service.TransactionType) ([]service.CategoryTotal, error)
}

// ByCategoryHandler handles GET /transactions/by-category.
type ByCategoryHandler struct {
	TransactionService categoryTotaler
}

func NewByCategoryHandler(svc categoryTotaler) *ByCategoryHandler {
	return &ByCategoryHandler{TransactionService: svc}
}

func (h *ByCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transactions-by-category",
		Method:      http.MethodGet,
		Path:        "/transactions/by-category",
		Summary:     "Totals by category",
		Description: "Sums the caller's transactions per category, largest total first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// FromServiceTotals converts category totals to their response form.
func FromServiceTotals(totals []service.CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, len(totals))
	for i, total := range totals {
		out[i] = CategoryTotal{Category: total.Category, Total: handlers.Float(total.Total)}
	}
	return out
}

func (h *ByCategoryHandler) handle(ctx context.Context, input *ByCategoryInput) (*ByCategoryOutput, error) {
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	var txType *service.TransactionType
	if parsed, ok := service.ParseTransactionType(input.Type); ok {
		txType = &parsed
	}

	totals, err := h.TransactionService.GetTotalsByCategory(ctx, userID, txType)
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	return &ByCategoryOutput{Body: FromServiceTotals(totals)}, nil
}
