package budget

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type BudgetProgressInput struct {
	ID string `path:"id" doc:"Budget UUID"`
}

// Progress is what has been spent against a budget. Remaining is negative
// when the budget is overspent.
type Progress struct {
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

type BudgetProgressResponse struct {
	Budget   Budget   `json:"budget"`
	Progress Progress `json:"progress"`
}

type BudgetProgressOutput struct {
	Body BudgetProgressResponse
}

type progressGetter interface {
	GetBudgetProgress(ctx context.Context, userID string, id uuid.UUID) (*service.BudgetProgress, error)
}

// BudgetProgressHandler handles GET /budgets/{id}/progress.
type BudgetProgressHandler struct {
	BudgetService progressGetter
}

func NewBudgetProgressHandler(svc progressGetter) *BudgetProgressHandler {
	return &BudgetProgressHandler{BudgetService: svc}
}

func (h *BudgetProgressHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-progress",
		Method:      http.MethodGet,
		Path:        "/budgets/{id}/progress",
		Summary:     "Budget progress",
		Description: "Sums the caller's expenses in the budget's category and month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *BudgetProgressHandler) handle(ctx context.Context, input *BudgetProgressInput) (*BudgetProgressOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := handlers.ParseID(input.ID, msgNotFound)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("budgetID", id.String())
		stopTimer = logData.AddTiming("budgetProgressMs")
	}
	progress, err := h.BudgetService.GetBudgetProgress(ctx, userID, id)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound(msgNotFound)
	}
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	return &BudgetProgressOutput{Body: BudgetProgressResponse{
		Budget: fromService(progress.Budget),
		Progress: Progress{
			Spent:     handlers.Float(progress.Spent),
			Remaining: handlers.Float(progress.Remaining),
		},
	}}, nil
}
