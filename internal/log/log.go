// Package log builds the application logger: console output on stderr plus
// an optional append-only log file mirror.
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a logger writing to stderr and, when logFile is non-nil,
// mirroring every level to it. format selects the file/console encoding
// ("json" for structured output, anything else for plain console lines).
// verbose lowers the stderr threshold from warn to debug.
func NewLogger(stderr io.Writer, logFile io.Writer, format string, verbose bool) *zap.SugaredLogger {
	var cores []zapcore.Core

	if logFile != nil {
		// The file mirror records everything regardless of verbosity.
		allLevels := zap.LevelEnablerFunc(func(zapcore.Level) bool { return true })
		cores = append(cores, zapcore.NewCore(newEncoder(format, true), zapcore.AddSync(logFile), allLevels))
	}

	stderrLevel := zapcore.WarnLevel
	if verbose {
		stderrLevel = zapcore.DebugLevel
	}
	cores = append(cores, zapcore.NewCore(newEncoder(format, verbose), zapcore.AddSync(stderr), stderrLevel))

	return zap.New(zapcore.NewTee(cores...)).Sugar()
}

func newEncoder(format string, withLevel bool) zapcore.Encoder {
	if format == "json" {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}

	// Prefix messages with the level only when it carries information.
	levelKey := ""
	if withLevel {
		levelKey = "level"
	}
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
}
