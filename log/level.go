package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a numeric log severity.
// One verbosity step is 10, so "-v" moves the threshold one level down.
type Level int

const (
	NotsetLevel   Level = 0
	DebugLevel    Level = 10
	InfoLevel     Level = 20
	WarnLevel     Level = 30
	ErrorLevel    Level = 40
	CriticalLevel Level = 50

	// LevelStep is the distance between two adjacent levels.
	LevelStep Level = 10
)

var nameToLevel = map[string]Level{
	"CRITICAL": CriticalLevel,
	"FATAL":    CriticalLevel,
	"ERROR":    ErrorLevel,
	"WARN":     WarnLevel,
	"WARNING":  WarnLevel,
	"INFO":     InfoLevel,
	"DEBUG":    DebugLevel,
	"NOTSET":   NotsetLevel,
}

// LevelNames returns all accepted level names, from the most to the least severe.
func LevelNames() []string {
	return []string{"CRITICAL", "FATAL", "ERROR", "WARN", "WARNING", "INFO", "DEBUG", "NOTSET"}
}

// ParseLevel creates Level from a level name, eg. "WARNING" -> WarnLevel.
func ParseLevel(name string) (Level, error) {
	if level, found := nameToLevel[strings.ToUpper(name)]; found {
		return level, nil
	}
	return NotsetLevel, fmt.Errorf(`log level must be one of %s, given "%s"`, strings.Join(LevelNames(), ", "), name)
}

func (l Level) String() string {
	switch {
	case l >= CriticalLevel:
		return "CRITICAL"
	case l >= ErrorLevel:
		return "ERROR"
	case l >= WarnLevel:
		return "WARN"
	case l >= InfoLevel:
		return "INFO"
	case l >= DebugLevel:
		return "DEBUG"
	default:
		return "NOTSET"
	}
}

// severity maps a zap level of a log record to the numeric Level scale.
func severity(l zapcore.Level) Level {
	switch l {
	case zapcore.DebugLevel:
		return DebugLevel
	case zapcore.InfoLevel:
		return InfoLevel
	case zapcore.WarnLevel:
		return WarnLevel
	case zapcore.ErrorLevel:
		return ErrorLevel
	default:
		// dpanic, panic, fatal
		return CriticalLevel
	}
}

// enabler creates a per-sink filter: a record passes if its severity
// reaches the threshold.
func enabler(threshold Level) zap.LevelEnablerFunc {
	return func(l zapcore.Level) bool {
		return severity(l) >= threshold
	}
}
