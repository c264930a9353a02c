package transaction

import (
	"github.com/carson-networks/finance-tracker/internal/handlers"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string  `json:"id" doc:"Transaction UUID"`
	UserID      string  `json:"userId" doc:"Owning user"`
	Amount      string  `json:"amount" doc:"Decimal amount with two fractional digits"`
	Type        string  `json:"type" doc:"income or expense"`
	Category    string  `json:"category"`
	Date        string  `json:"date" doc:"YYYY-MM-DD transaction date"`
	Note        *string `json:"note"`
	IsRecurring bool    `json:"isRecurring"`
	Interval    *string `json:"interval" doc:"weekly or monthly for recurring transactions"`
	CreatedAt   string  `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt   string  `json:"updatedAt" doc:"RFC3339 time of the last change"`
}

// TransactionResponse wraps a single transaction with a status message.
type TransactionResponse struct {
	Message     string      `json:"message"`
	Transaction Transaction `json:"transaction"`
}

func fromService(tx service.Transaction) Transaction {
	out := Transaction{
		ID:          tx.ID.String(),
		UserID:      tx.UserID,
		Amount:      tx.Amount.StringFixed(2),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Date:        handlers.FormatDate(tx.Date),
		Note:        tx.Note,
		IsRecurring: tx.IsRecurring,
		CreatedAt:   handlers.FormatTimestamp(tx.CreatedAt),
		UpdatedAt:   handlers.FormatTimestamp(tx.UpdatedAt),
	}
	if tx.Interval != nil {
		interval := string(*tx.Interval)
		out.Interval = &interval
	}
	return out
}

func fromServiceList(txs []service.Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = fromService(tx)
	}
	return out
}

const (
	msgRequired         = "amount, type, and category are required"
	msgInvalidType      = "type must be 'income' or 'expense'"
	msgInvalidAmount    = "amount must be a decimal number"
	msgInvalidInterval  = "interval must be 'weekly' or 'monthly'"
	msgEmptyCategory    = "category must be a non-empty string"
	msgInvalidNote      = "note must be a string or null"
	msgInvalidRecurring = "isRecurring must be a boolean"
	msgNotFound         = "Transaction not found"
)
