package transaction

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Register wires every transaction operation to svc.
func Register(api huma.API, svc *service.TransactionService) {
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewSummaryHandler(svc).Register(api)
	NewByCategoryHandler(svc).Register(api)
	NewGenerateRecurringHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
}
