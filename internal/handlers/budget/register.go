package budget

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Register wires every budget operation to svc.
func Register(api huma.API, svc *service.BudgetService) {
	NewCreateBudgetHandler(svc).Register(api)
	NewListBudgetsHandler(svc).Register(api)
	NewBudgetProgressHandler(svc).Register(api)
}
