// Package cli implements the graphgen command-line interface.
//
// Commands:
//   - partitions: list restricted integer partitions, most balanced first
//   - sample: draw graphs from a constraints profile and print them
//
// Every command accepts --verbose (-v) for debug logging on stderr. The
// logger travels through the command context.
package cli

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a console logger writing to w at info level, or debug
// level when verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""

	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level))
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the command logger, or a no-op logger.
func loggerFromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
			return l
		}
	}

	return zap.NewNop()
}
