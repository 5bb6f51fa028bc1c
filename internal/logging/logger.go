// Package logging is the central logging package of the CLI. It holds our custom log formatters for zap.
//
// Info-level output is the primary way Spotter talks to a user on the terminal, so the Info level is routed to
// stdout while everything else goes to stderr. This keeps diagnostics out of the way when stdout is piped into
// another program.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the logger for the CLI. Without the verbose option, only Info, Warn, and Error messages are
// emitted. Verbose mode additionally enables Debug output, timestamps, and stacktraces on errors.
func New(verbose bool) *zap.SugaredLogger {
	if verbose {
		return newVerboseLogger()
	}

	return newDefaultLogger()
}

func newDefaultLogger() *zap.SugaredLogger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		// These strings are meaningless - they just need to be non-empty for the console encoder.
		MessageKey: "M",
		LevelKey:   "L",
		EncodeLevel: func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			// Info messages carry the primary output and are printed without a level prefix.
			if lvl != zapcore.InfoLevel {
				zapcore.CapitalColorLevelEncoder(lvl, enc)
			}
		},
	})

	return zap.New(zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), infoOnly()),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), warnAndUp()),
	)).Sugar()
}

func newVerboseLogger() *zap.SugaredLogger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:      "L",
		MessageKey:    "M",
		NameKey:       "N",
		StacktraceKey: "S",
		TimeKey:       "T",
		EncodeLevel:   zapcore.CapitalColorLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
	})

	sideChannel := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level != zapcore.InfoLevel
	})

	return zap.New(zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), infoOnly()),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), sideChannel),
	)).WithOptions(
		zap.Development(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).Sugar()
}

func infoOnly() zap.LevelEnablerFunc {
	return func(level zapcore.Level) bool {
		return level == zapcore.InfoLevel
	}
}

func warnAndUp() zap.LevelEnablerFunc {
	return func(level zapcore.Level) bool {
		return level >= zapcore.WarnLevel
	}
}
