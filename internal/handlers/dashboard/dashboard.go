package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/handlers/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type DashboardResponse struct {
	Month              string                      `json:"month" doc:"Current month as <year>-<month>, month not zero padded"`
	Income             float64                     `json:"income"`
	Expenses           float64                     `json:"expenses"`
	NetSavings         float64                     `json:"netSavings"`
	SpendingByCategory []transaction.CategoryTotal `json:"spendingByCategory"`
}

type DashboardOutput struct {
	Body DashboardResponse
}

type dashboardGetter interface {
	GetDashboard(ctx context.Context, userID string) (*service.Dashboard, error)
}

// Handler handles GET /dashboard.
type Handler struct {
	DashboardService dashboardGetter
}

func NewHandler(svc dashboardGetter) *Handler {
	return &Handler{DashboardService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/dashboard",
		Summary:     "Month-to-date dashboard",
		Description: "Aggregates every transaction dated on or after the first day of the current month.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*DashboardOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardMs")
	}
	dashboard, err := h.DashboardService.GetDashboard(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	return &DashboardOutput{Body: DashboardResponse{
		Month:              dashboard.Month,
		Income:             handlers.Float(dashboard.Income),
		Expenses:           handlers.Float(dashboard.Expenses),
		NetSavings:         handlers.Float(dashboard.NetSavings),
		SpendingByCategory: transaction.FromServiceTotals(dashboard.SpendingByCategory),
	}}, nil
}
