package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

const runningMessage = "Finance Tracker API running"

// Handler answers the unauthenticated health check.
type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	logData.AddData("remoteAddr", req.RemoteAddr)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]string{"message": runningMessage})
}
