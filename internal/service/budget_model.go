package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// MonthLayout is the layout of a budget month.
const MonthLayout = "2006-01"

// Budget represents a budget in the service layer.
type Budget struct {
	ID        uuid.UUID
	UserID    string
	Amount    float64
	Category  string
	Month     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget is the input for creating a budget.
type NewBudget struct {
	Amount   float64
	Category string
	Month    string
}

// BudgetProgress is how much of a budget has been spent. Remaining goes
// negative once the budget is overspent.
type BudgetProgress struct {
	Budget    Budget
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// MonthRange returns the half-open date range [start, end) covered by a
// YYYY-MM month.
func MonthRange(month string) (start, end time.Time, err error) {
	start, err = time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}

func budgetFromStorage(row *sqlconfig.Budget) Budget {
	return Budget{
		ID:        row.ID,
		UserID:    row.UserID,
		Amount:    row.Amount,
		Category:  row.Category,
		Month:     row.Month,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
