package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Settings is the verbosity/quiet record retained by the caller,
// immutable after creation.
type Settings struct {
	Verbosity int
	Quiet     bool
}

// Config describes both sinks of a CLI logger.
type Config struct {
	ConsoleLevel  Level
	ConsoleFormat Format
	File          string
	FileLevel     Level
	FileFormat    Format
	Verbosity     int
	Quiet         bool
}

// DefaultConfig returns the sink setup used when no flag or ENV overrides it.
func DefaultConfig() Config {
	return Config{
		ConsoleLevel:  InfoLevel,
		ConsoleFormat: FormatConsole,
		FileLevel:     DebugLevel,
		FileFormat:    FormatJSON,
	}
}

// NewCliLogger creates a logger with a console sink and an optional file sink.
// Re-initialization is creating a new logger and closing the old file,
// the logger itself passes all levels, each sink applies its own threshold.
func NewCliLogger(stderr io.Writer, logFile *File, cfg Config) (*zap.SugaredLogger, Settings) {
	settings := Settings{Verbosity: cfg.Verbosity, Quiet: cfg.Quiet}

	var cores []zapcore.Core

	// Log to file
	if logFile != nil {
		cores = append(cores, fileCore(logFile, cfg.FileLevel, cfg.FileFormat))
	}

	// Log to console
	cores = append(cores, consoleCore(stderr, cfg))

	// Create logger
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar(), settings
}

// fileCore writes to the log file, the threshold comes from the
// file-level option only.
func fileCore(logFile *File, threshold Level, format Format) zapcore.Core {
	return zapcore.NewCore(fileEncoder(format), logFile.File(), enabler(threshold))
}

// consoleCore writes to the error stream through SafeWriter.
func consoleCore(stderr io.Writer, cfg Config) zapcore.Core {
	writer, ok := stderr.(*SafeWriter)
	if !ok {
		writer = NewSafeWriter(stderr)
	}
	return zapcore.NewCore(consoleEncoder(cfg.ConsoleFormat), writer, enabler(ConsoleThreshold(cfg)))
}

// ConsoleThreshold computes the effective console severity threshold.
// Quiet mode sets a level above the maximum defined severity, so nothing
// is emitted. Otherwise each verbosity increment lowers the base level
// by one level step, revealing more detail.
func ConsoleThreshold(cfg Config) Level {
	if cfg.Quiet {
		return CriticalLevel + LevelStep
	}
	return cfg.ConsoleLevel - Level(cfg.Verbosity)*LevelStep
}
