package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

type ctxKey struct{}

type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

func New(service string, level slog.Level) *Logger {
	return NewWithWriter(service, os.Stdout, level)
}

func NewWithWriter(service string, w io.Writer, level slog.Level) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return NewWithWriter("test", io.Discard, slog.LevelError+1)
}

// ParseLevel maps debug|info|warn|error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID stores the request id so service code can log it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}

func (l *Logger) Info(ctx context.Context, action, message string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, action, message, attrs...)
}

func (l *Logger) Debug(ctx context.Context, action, message string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, action, message, attrs...)
}

func (l *Logger) Error(ctx context.Context, action, message string, err error, attrs ...slog.Attr) {
	if err != nil {
		attrs = append(attrs, slog.Group("error", slog.String("msg", err.Error())))
	}
	l.log(ctx, slog.LevelError, action, message, attrs...)
}

func (l *Logger) log(ctx context.Context, level slog.Level, action, message string, attrs ...slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	base := []slog.Attr{
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("request_id", RequestID(ctx)),
	}
	l.handler.LogAttrs(ctx, level, message, append(base, attrs...)...)
}
