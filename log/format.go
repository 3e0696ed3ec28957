package log

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ParseFormat creates Format from string.
// On invalid value Console is used as default with an error.
func ParseFormat(format string) (Format, error) {
	logFormat := Format(format)

	switch logFormat {
	case FormatConsole, FormatJSON:
		return logFormat, nil
	default:
		return FormatConsole, fmt.Errorf(`log format must be "%s" or "%s", given "%s"`, FormatConsole, FormatJSON, format)
	}
}

// consoleEncoder renders "LEVEL<tab>message" without a timestamp.
func consoleEncoder(format Format) zapcore.Encoder {
	if format == FormatJSON {
		return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			TimeKey:     "time",
			LevelKey:    "level",
			MessageKey:  "message",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			EncodeTime:  zapcore.ISO8601TimeEncoder,
		})
	}

	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
}

// fileEncoder renders time, level, caller and message.
func fileEncoder(format Format) zapcore.Encoder {
	if format == FormatConsole {
		return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "ts",
			LevelKey:         "level",
			CallerKey:        "caller",
			MessageKey:       "msg",
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: "\t",
		})
	}

	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:      "time",
		LevelKey:     "level",
		CallerKey:    "caller",
		MessageKey:   "message",
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	})
}
