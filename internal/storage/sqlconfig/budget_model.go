package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Budget represents a budget record.
type Budget struct {
	ID        uuid.UUID `db:"id"`
	UserID    string    `db:"user_id"`
	Amount    float64   `db:"amount"`
	Category  string    `db:"category"`
	Month     string    `db:"month"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	UserID   string
	Amount   float64
	Category string
	Month    string
}

// IBudgetTable defines the interface for budget storage operations.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	List(ctx context.Context, userID string) ([]*Budget, error)
}
