package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is a unit of work performed inside one database transaction.
// Results are left on the action's own fields.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
