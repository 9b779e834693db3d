package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/liyachittilappilly/stella-linearregression/pkg/errors"
)

func TestRegisterWarningLoggerToCapturesStructuredWarning(t *testing.T) {
	var buf bytes.Buffer
	RegisterWarningLoggerTo(&buf)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewDataConversionWarning("text", "float64", "unparsable feature cell replaced with 0"))

	out := buf.String()
	if out == "" {
		t.Fatal("expected warning output")
	}
	if !strings.Contains(out, `"type":"DataConversionWarning"`) {
		t.Errorf("structured warning fields missing: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("expected warn level: %s", out)
	}
}

func TestToLogLevelPanicsOnUnknownLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown level")
		}
	}()
	ToLogLevel("verbose")
}
