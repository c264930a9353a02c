package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("userID", "user-1")
	stop := logData.AddTiming("queryMs")
	stop()

	entry := logData.Log()
	assert.Equal(t, "user-1", entry.Data["userID"])
	assert.Contains(t, entry.Data, "queryMs")
}

func TestLogData_TimingsAccumulate(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	for i := 0; i < 2; i++ {
		stop := logData.AddTiming("dbMs")
		time.Sleep(5 * time.Millisecond)
		stop()
	}

	elapsed, ok := logData.Log().Data["dbMs"].(int64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, elapsed, int64(10))
}

func TestLogData_Context(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	assert.Nil(t, GetLogData(context.Background()))
	assert.Same(t, logData, GetLogData(WithLogData(context.Background(), logData)))
}

func TestSetLevel(t *testing.T) {
	logger, _ := newBufferedLogger()

	assert.NoError(t, SetLevel(logger, "debug"))
	assert.Equal(t, logrus.DebugLevel, logger.Level)
	assert.Error(t, SetLevel(logger, "loud"))
	assert.Equal(t, logrus.DebugLevel, logger.Level)
}

func TestLoggingWrapper_Complete(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Health", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		logData.AddData("checked", true)
		w.WriteHeader(http.StatusOK)
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	line := decodeLine(t, buf)
	assert.Equal(t, "Handler.Health.Complete", line["msg"])
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, true, line["checked"])
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Health", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("bad method")
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	line := decodeLine(t, buf)
	assert.Equal(t, "Handler.Health.Error", line["msg"])
	assert.Equal(t, "bad method", line["error"])
}

type pingOutput struct {
	Body struct {
		Seen bool `json:"seen"`
	}
}

func TestMiddleware_AttachesLogData(t *testing.T) {
	logger, buf := newBufferedLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(NewMiddleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		if logData := GetLogData(ctx); logData != nil {
			logData.AddData("pinged", true)
			out.Body.Seen = true
		}
		return out, nil
	})

	resp := api.Get("/ping")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"seen":true`)

	line := decodeLine(t, buf)
	assert.Equal(t, "Handler.ping.Complete", line["msg"])
	assert.Equal(t, true, line["pinged"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
}
