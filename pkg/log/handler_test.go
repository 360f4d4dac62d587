package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/YuminosukeSato/gradfn/pkg/errors"
)

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := errors.NewDimensionError("Linear.Apply", 2, 3, 1)
	logger.Error("apply failed", ErrAttr(err))

	out := buf.String()
	if !strings.Contains(out, StacktraceAttrKey) {
		t.Errorf("log output missing %q attribute: %s", StacktraceAttrKey, out)
	}
	if !strings.Contains(out, "apply failed") {
		t.Errorf("log output missing message: %s", out)
	}
}

func TestErrFmtHandlerPassesThroughWithoutError(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	logger.Info("no error here", slog.Int(RowsKey, 10))

	out := buf.String()
	if strings.Contains(out, StacktraceAttrKey) {
		t.Errorf("unexpected stacktrace attribute: %s", out)
	}
	if !strings.Contains(out, RowsKey) {
		t.Errorf("log output missing attribute: %s", out)
	}
}

func TestZerologWarnBridge(t *testing.T) {
	var buf bytes.Buffer
	InstallZerologWarnBridge(&buf)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewNumericalWarning("LogisticRegression.Apply", []float64{1}))

	out := buf.String()
	if !strings.Contains(out, "NumericalWarning") {
		t.Errorf("bridge output missing structured warning: %s", out)
	}
	if !strings.Contains(out, "LogisticRegression.Apply") {
		t.Errorf("bridge output missing operation: %s", out)
	}
}
