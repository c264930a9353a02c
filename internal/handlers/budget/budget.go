package budget

import (
	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID        string  `json:"id" doc:"Budget UUID"`
	UserID    string  `json:"userId" doc:"Owning user"`
	Amount    float64 `json:"amount" doc:"Spending cap for the month"`
	Category  string  `json:"category"`
	Month     string  `json:"month" doc:"YYYY-MM"`
	CreatedAt string  `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string  `json:"updatedAt"`
}

func fromService(b service.Budget) Budget {
	return Budget{
		ID:        b.ID.String(),
		UserID:    b.UserID,
		Amount:    b.Amount,
		Category:  b.Category,
		Month:     b.Month,
		CreatedAt: handlers.FormatTimestamp(b.CreatedAt),
		UpdatedAt: handlers.FormatTimestamp(b.UpdatedAt),
	}
}

const (
	msgRequired      = "amount, category, and month are required"
	msgInvalidAmount = "amount must be a number"
	msgInvalidMonth  = "month must be in YYYY-MM format"
	msgNotFound      = "Budget not found"
)
