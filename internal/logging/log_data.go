package logging

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// LogData gathers the fields and timings of one request so they are written
// as a single log line when it finishes.
type LogData struct {
	mu      sync.Mutex
	logger  *logrus.Logger
	fields  logrus.Fields
	timings map[string]time.Duration
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		logger:  logger,
		fields:  logrus.Fields{},
		timings: make(map[string]time.Duration),
	}
}

func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData is nil outside a logged request.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}

// AddTiming starts a timer. The returned func adds the elapsed time to name,
// so repeated measurements accumulate.
func (l *LogData) AddTiming(name string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		l.mu.Lock()
		l.timings[name] += elapsed
		l.mu.Unlock()
	}
}

func (l *LogData) AddData(key string, value any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields[key] = value
}

// Log returns an entry carrying every field, with timings in milliseconds.
func (l *LogData) Log() *logrus.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make(logrus.Fields, len(l.fields)+len(l.timings))
	for key, value := range l.fields {
		fields[key] = value
	}
	for name, elapsed := range l.timings {
		fields[name] = elapsed.Milliseconds()
	}
	return l.logger.WithFields(fields)
}
