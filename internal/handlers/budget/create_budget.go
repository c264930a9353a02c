package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type CreateBudgetBody struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	Amount   any      `json:"amount,omitempty" doc:"Spending cap, as a number or a numeric string"`
	Category string   `json:"category,omitempty"`
	Month    string   `json:"month,omitempty" doc:"YYYY-MM"`
}

type CreateBudgetInput struct {
	Body CreateBudgetBody
}

type CreateBudgetResponse struct {
	Message string `json:"message"`
	Budget  Budget `json:"budget"`
}

type CreateBudgetOutput struct {
	Body CreateBudgetResponse
}

type budgetCreator interface {
	CreateBudget(ctx context.Context, userID string, in service.NewBudget) (*service.Budget, error)
}

// CreateBudgetHandler handles POST /budgets.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/budgets",
		Summary:     "Create budget",
		Description: "Sets a spending cap for one category in one month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseCreateBudgetInput(input *CreateBudgetInput) (service.NewBudget, error) {
	body := input.Body
	if handlers.MissingAmount(body.Amount) || body.Category == "" || body.Month == "" {
		return service.NewBudget{}, huma.Error400BadRequest(msgRequired)
	}

	amount, err := handlers.ParseAmount(body.Amount)
	if err != nil {
		return service.NewBudget{}, huma.Error400BadRequest(msgInvalidAmount)
	}

	if _, _, err := service.MonthRange(body.Month); err != nil {
		return service.NewBudget{}, huma.Error400BadRequest(msgInvalidMonth)
	}

	return service.NewBudget{
		Amount:   amount.InexactFloat64(),
		Category: body.Category,
		Month:    body.Month,
	}, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	newBudget, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	budget, err := h.BudgetService.CreateBudget(ctx, userID, newBudget)
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("budgetID", budget.ID.String())
	}

	return &CreateBudgetOutput{Body: CreateBudgetResponse{
		Message: "Budget created",
		Budget:  fromService(*budget),
	}}, nil
}
