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

type DeleteTransactionInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeleteTransactionOutput struct {
	Body MessageResponse
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, userID string, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/transactions/{id}",
		Summary:     "Delete transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := handlers.UserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := handlers.ParseID(input.ID, msgNotFound)
	if err != nil {
		return nil, err
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", id.String())
	}

	err = h.TransactionService.DeleteTransaction(ctx, userID, id)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound(msgNotFound)
	}
	if err != nil {
		return nil, handlers.InternalError(ctx, err)
	}

	return &DeleteTransactionOutput{Body: MessageResponse{Message: "Transaction deleted"}}, nil
}
