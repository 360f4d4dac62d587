// Package log provides structured logging helpers for gradfn.
//
// The diff package itself never logs: every objective is a pure function of
// its inputs. This package serves the library's periphery — examples,
// optimizers built on top of gradfn, and the warning bridge in pkg/errors.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/gradfn/pkg/errors"
)

// SetupLogger function setup logger.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// SetupConsoleLogger installs a human-readable tint handler instead of the
// JSON handler. Intended for examples and interactive use.
func SetupConsoleLogger(loglevel string) {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level: ToLogLevel(loglevel),
	})
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
}

func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// InstallZerologWarnBridge routes pkg/errors warnings through a zerolog
// logger writing to w, so warning types with MarshalZerologObject come out
// as structured events.
func InstallZerologWarnBridge(w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.Object("warning", obj)
		} else {
			event.Str("warning", warning.Error())
		}
		event.Msg("gradfn warning")
	})
}
