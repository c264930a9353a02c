package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ListBudgetsOutput struct {
	Body []Budget
}

type budgetLister interface {
	ListBudgets(ctx context.Context, userID string) ([]service.Budget, error)
}

// ListBudgetsHandler handles GET /budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/budgets",
		Summary:     "List budgets",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, _ *struct{}) (*ListBudgetsOutput, error) {
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgets, err := h.BudgetService.ListBudgets(ctx, userID)
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	out := make([]Budget, len(budgets))
	for i, b := range budgets {
		out[i] = fromService(b)
	}
	return &ListBudgetsOutput{Body: out}, nil
}
