package main

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// logLevelEnv selects the log level; unset or invalid means warn.
const logLevelEnv = "IMG2ASCII_LOG_LEVEL"

// newLogger creates a logger writing to w at the given level.
// Timestamps are formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// levelFromEnv reads logLevelEnv through getenv.
func levelFromEnv(getenv func(string) string) log.Level {
	v := strings.TrimSpace(getenv(logLevelEnv))
	if v == "" {
		return log.WarnLevel
	}
	level, err := log.ParseLevel(v)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// progress logs an operation's completion with elapsed time at debug level.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Microsecond))
	p.logger.Debug(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
