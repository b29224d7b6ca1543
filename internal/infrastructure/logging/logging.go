// Package logging sets up the process-wide zap logger.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/application/settings"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It discards everything until
// Initialize succeeds.
var Logger = zap.NewNop().Sugar()

// Initialize points Logger at cfg.File. An empty path keeps logging disabled,
// since stdout and stderr belong to the terminal UI.
func Initialize(cfg settings.LogConfig) error {
	if strings.TrimSpace(cfg.File) == "" {
		Logger = zap.NewNop().Sugar()
		return nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return errors.WithHint(errors.Wrapf(err, "log level %q", cfg.Level), "use debug, info, warn or error")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0750); err != nil {
		return errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}

	Logger = zap.New(zapcore.NewCore(newEncoder(cfg.JSON), zapcore.AddSync(f), level)).Sugar()
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = Logger.Sync()
}

func newEncoder(json bool) zapcore.Encoder {
	if json {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(enc)
}
