package log

import (
	"context"
	"sync"

	loom "github.com/loomnetwork/go-loom"
)

// Reexported types
type Logger = loom.Logger

var (
	NewLogger = loom.NewLoomLogger

	mu   sync.RWMutex
	root = NewLogger("info", "")
)

type contextKey string

func (c contextKey) String() string {
	return "log " + string(c)
}

var (
	contextKeyLog = contextKey("log")
)

// Setup replaces the root logger. An empty destination logs to stdout, "file://<path>" logs to
// the given file.
func Setup(level, dest string) *Logger {
	logger := NewLogger(level, dest)
	mu.Lock()
	root = logger
	mu.Unlock()
	return logger
}

func Root() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

func SetContext(ctx context.Context, log *Logger) context.Context {
	return context.WithValue(ctx, contextKeyLog, log)
}

func Log(ctx context.Context) *Logger {
	logger, _ := ctx.Value(contextKeyLog).(*Logger)
	if logger == nil {
		return Root()
	}

	return logger
}
