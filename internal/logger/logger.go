package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Initialize configura o logger global (nível + formato text/json).
func Initialize(level, format string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func Get() *slog.Logger {
	if defaultLogger == nil {
		Initialize("info", "text")
	}
	return defaultLogger
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

func InfoContext(ctx context.Context, msg string, args ...any) {
	Get().InfoContext(ctx, msg, args...)
}

func WarnContext(ctx context.Context, msg string, args ...any) {
	Get().WarnContext(ctx, msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	Get().ErrorContext(ctx, msg, args...)
}

func WithComponent(name string) *slog.Logger {
	return Get().With("component", name)
}

// --------------------------------------------------
// Rastreamento de use cases
// --------------------------------------------------

func EnterMethod(method string, args ...any) {
	all := append([]any{"method", method, "event", "enter"}, args...)
	Get().Debug("→ method entered", all...)
}

func ExitMethod(method string, args ...any) {
	all := append([]any{"method", method, "event", "exit"}, args...)
	Get().Debug("← method exited", all...)
}

func ExitMethodWithError(method string, err error, args ...any) {
	all := append([]any{"method", method, "event", "exit", "error", err}, args...)
	Get().Warn("← method exited with error", all...)
}

// --------------------------------------------------
// Recursos externos
// --------------------------------------------------

func DatabaseCall(operation string, args ...any) {
	all := append([]any{"operation", operation}, args...)
	Get().Debug("→ database call", all...)
}

func DatabaseResult(operation string, rows int64, err error, args ...any) {
	all := append([]any{"operation", operation, "rows_affected", rows}, args...)
	if err != nil {
		all = append(all, "error", err)
		Get().Error("← database call failed", all...)
		return
	}
	Get().Debug("← database call succeeded", all...)
}

func ExternalServiceCall(service, operation string, args ...any) {
	all := append([]any{"service", service, "operation", operation}, args...)
	Get().Debug("→ external service call", all...)
}

func ExternalServiceResult(service, operation string, err error, args ...any) {
	all := append([]any{"service", service, "operation", operation}, args...)
	if err != nil {
		all = append(all, "error", err)
		Get().Warn("← external service call failed", all...)
		return
	}
	Get().Debug("← external service call succeeded", all...)
}
