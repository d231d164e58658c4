package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

type ctxKey struct{}

type implLogger struct {
	logger *log.Logger
}

// New creates a text Logger writing to stdout.
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level, "text")
}

// NewWithWriter creates a Logger writing to w. format is "text" or "json".
func NewWithWriter(w io.Writer, level, format string) Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
	})
	if strings.EqualFold(format, "json") {
		l.SetFormatter(log.JSONFormatter)
	}

	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)

	return &implLogger{logger: l}
}

// WithRequestID returns a context whose log lines carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (l *implLogger) from(ctx context.Context) *log.Logger {
	if id := RequestID(ctx); id != "" {
		return l.logger.With("request_id", id)
	}
	return l.logger
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.from(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.from(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.from(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.from(ctx).Errorf(msg, args...)
}
