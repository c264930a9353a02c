package transaction

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

// UpdateTransactionBody lists the fields to change. Absent fields keep their
// stored value and a null note clears it. Members are checked only after the
// transaction is known to belong to the caller.
type UpdateTransactionBody struct {
	_           struct{}           `json:"-" additionalProperties:"true"`
	Amount      handlers.BodyField `json:"amount,omitempty" doc:"Decimal amount, as a number or a numeric string"`
	Type        handlers.BodyField `json:"type,omitempty" doc:"income or expense"`
	Category    handlers.BodyField `json:"category,omitempty"`
	Date        handlers.BodyField `json:"date,omitempty" doc:"YYYY-MM-DD transaction date"`
	Note        handlers.BodyField `json:"note,omitempty" doc:"Free text, null to clear"`
	IsRecurring handlers.BodyField `json:"isRecurring,omitempty"`
	Interval    handlers.BodyField `json:"interval,omitempty" doc:"weekly or monthly"`
}

type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

type UpdateTransactionOutput struct {
	Body TransactionResponse
}

type transactionUpdater interface {
	GetTransaction(ctx context.Context, userID string, id uuid.UUID) (*service.Transaction, error)
	UpdateTransaction(ctx context.Context, userID string, id uuid.UUID, changes service.TransactionChanges) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Changes any subset of a transaction's fields.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionBody(body UpdateTransactionBody) (service.TransactionChanges, error) {
	var changes service.TransactionChanges

	if !body.Amount.IsUnset() {
		raw, _ := body.Amount.Get()
		amount, err := handlers.ParseAmount(raw)
		if err != nil {
			return service.TransactionChanges{}, huma.Error400BadRequest(msgInvalidAmount)
		}
		changes.Amount = &amount
	}

	rawType, sent, err := body.Type.Text()
	if sent {
		txType, ok := service.ParseTransactionType(rawType)
		if err != nil || !ok {
			return service.TransactionChanges{}, huma.Error400BadRequest(msgInvalidType)
		}
		changes.Type = &txType
	}

	category, sent, err := body.Category.Text()
	if sent {
		if err != nil || category == "" {
			return service.TransactionChanges{}, huma.Error400BadRequest(msgEmptyCategory)
		}
		changes.Category = &category
	}

	// A non-string date comes back empty and fails to parse.
	rawDate, sent, _ := body.Date.Text()
	if sent {
		date, err := handlers.ParseDate("date", rawDate)
		if err != nil {
			return service.TransactionChanges{}, err
		}
		changes.Date = &date
	}

	changes.Note, err = body.Note.NullableText()
	if err != nil {
		return service.TransactionChanges{}, huma.Error400BadRequest(msgInvalidNote)
	}

	isRecurring, sent, err := body.IsRecurring.Bool()
	if sent {
		if err != nil {
			return service.TransactionChanges{}, huma.Error400BadRequest(msgInvalidRecurring)
		}
		changes.IsRecurring = &isRecurring
	}

	rawInterval, sent, err := body.Interval.Text()
	if sent {
		interval, ok := service.ParseRecurrenceInterval(rawInterval)
		if err != nil || !ok {
			return service.TransactionChanges{}, huma.Error400BadRequest(msgInvalidInterval)
		}
		changes.Interval = &interval
	}

	return changes, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := handlers.ParseID(input.ID, msgNotFound)
	if err != nil {
		return nil, err
	}
	if logData != nil {
		logData.AddData("transactionID", id.String())
	}

	if _, err := h.TransactionService.GetTransaction(ctx, userID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, huma.Error404NotFound(msgNotFound)
		}
		return nil, handlers.InternalError(ctx, err)
	}

	changes, err := parseUpdateTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.UpdateTransaction(ctx, userID, id, changes)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound(msgNotFound)
	}
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	return &UpdateTransactionOutput{Body: TransactionResponse{
		Message:     "Transaction updated",
		Transaction: fromService(*tx),
	}}, nil
}
