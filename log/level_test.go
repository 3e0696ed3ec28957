package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := map[string]Level{
		"CRITICAL": CriticalLevel,
		"FATAL":    CriticalLevel,
		"ERROR":    ErrorLevel,
		"WARN":     WarnLevel,
		"WARNING":  WarnLevel,
		"INFO":     InfoLevel,
		"DEBUG":    DebugLevel,
		"NOTSET":   NotsetLevel,
		"debug":    DebugLevel,
		"Warning":  WarnLevel,
	}
	for name, expected := range cases {
		level, err := ParseLevel(name)
		assert.NoError(t, err, name)
		assert.Equal(t, expected, level, name)
	}
}

func TestParseLevelInvalid(t *testing.T) {
	t.Parallel()
	_, err := ParseLevel("LOUD")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `given "LOUD"`)
}

func TestLevelString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "NOTSET", NotsetLevel.String())
	assert.Equal(t, "CRITICAL", (CriticalLevel + LevelStep).String())

	// Thresholds between two levels report the lower one
	assert.Equal(t, "DEBUG", (InfoLevel - 5).String())
}

func TestSeverity(t *testing.T) {
	t.Parallel()
	assert.Equal(t, DebugLevel, severity(zapcore.DebugLevel))
	assert.Equal(t, InfoLevel, severity(zapcore.InfoLevel))
	assert.Equal(t, WarnLevel, severity(zapcore.WarnLevel))
	assert.Equal(t, ErrorLevel, severity(zapcore.ErrorLevel))
	assert.Equal(t, CriticalLevel, severity(zapcore.FatalLevel))
}
