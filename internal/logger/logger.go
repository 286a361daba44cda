package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// Init replaces the no-op default with a production JSON logger.
// Call once at startup, before any request handling.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	mu.Lock()
	log = l
	mu.Unlock()

	l.Info("logger initialized")
}

func Info(msg string, fields map[string]any) {
	current().Info(msg, zapFields(fields)...)
}

func Warn(msg string, fields map[string]any) {
	current().Warn(msg, zapFields(fields)...)
}

func Error(msg string, fields map[string]any) {
	current().Error(msg, zapFields(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	current().Fatal(msg, zapFields(fields)...)
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func zapFields(fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
