package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/liyachittilappilly/stella-linearregression/pkg/errors"
)

// RegisterWarningLogger routes library warnings (DataConversionWarning,
// UndefinedMetricWarning, ...) through a zerolog logger writing to stderr.
// Warning types implementing zerolog.LogObjectMarshaler are emitted as
// structured objects.
func RegisterWarningLogger() {
	RegisterWarningLoggerTo(os.Stderr)
}

// RegisterWarningLoggerTo is like RegisterWarningLogger with an explicit
// destination, which keeps tests free of stderr noise.
func RegisterWarningLoggerTo(w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().Object("warning", obj).Msg(warning.Error())
			return
		}
		logger.Warn().Err(warning).Msg("library warning")
	})
}
