package transaction

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/handlers/handlerstest"
	"github.com/carson-networks/finance-tracker/internal/service"
)

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("DeleteTransaction", mock.Anything, "user-1", id).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/transactions/"+id.String(), handlerstest.AuthHeader("user-1"))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Transaction deleted"}`, resp.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_OtherUsersTransaction(t *testing.T) {
	mockSvc := new(mockTransactionService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("DeleteTransaction", mock.Anything, "user-a", id).Return(service.ErrNotFound)

	resp := newTestAPI(t, mockSvc).Delete("/transactions/"+id.String(), handlerstest.AuthHeader("user-a"))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), msgNotFound)
}

func TestHTTP_DeleteTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("DeleteTransaction", mock.Anything, "user-1", id).Return(errors.New("operator stopped"))

	resp := newTestAPI(t, mockSvc).Delete("/transactions/"+id.String(), handlerstest.AuthHeader("user-1"))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "operator stopped")
}
