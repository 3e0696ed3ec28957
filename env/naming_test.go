package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamingConvention(t *testing.T) {
	t.Parallel()
	n := NewNamingConvention("")
	assert.Equal(t, "FOO", n.FlagToEnv("foo"))
	assert.Equal(t, "LOG_LEVEL", n.FlagToEnv("log-level"))
	assert.Equal(t, "FOO_BAR_BAZ", n.FlagToEnv("foo-bar-baz"))
}

func TestNamingConventionPrefix(t *testing.T) {
	t.Parallel()
	n := NewNamingConvention("MY_APP_")
	assert.Equal(t, "MY_APP_LOG_FILE", n.FlagToEnv("log-file"))
}

func TestNamingConventionFlagNameEmpty(t *testing.T) {
	t.Parallel()
	n := NewNamingConvention("")
	assert.PanicsWithError(t, "flag name cannot be empty", func() {
		n.FlagToEnv("")
	})
}
