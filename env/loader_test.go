package env

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoadEnvString(t *testing.T) {
	t.Parallel()
	envs, err := LoadEnvString("FOO1=BAR1\nFOO2=BAR2\n")
	assert.NoError(t, err)
	assert.Equal(t, []string{"FOO1=BAR1", "FOO2=BAR2"}, envs.ToSlice())
}

func TestLoadEnvFile(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "project/.env", []byte("FOO=BAR\n"), 0o600))

	envs, err := LoadEnvFile(fs, "project/.env")
	assert.NoError(t, err)
	assert.Equal(t, "BAR", envs.Get("FOO"))

	_, err = LoadEnvFile(fs, "project/.env.missing")
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	t.Parallel()
	logger := zap.NewNop().Sugar()
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "project/.env", []byte("FOO=from-file\nEXTRA=value\n"), 0o600))

	// Existing envs take precedence
	osEnvs := FromMap(map[string]string{"FOO": "from-os"})
	envs := LoadDotEnv(logger, osEnvs, fs, []string{"project"})
	assert.Equal(t, "from-os", envs.Get("FOO"))
	assert.Equal(t, "value", envs.Get("EXTRA"))

	// Source map is not modified
	assert.Equal(t, "", osEnvs.Get("EXTRA"))
}

func TestLoadDotEnvNoFile(t *testing.T) {
	t.Parallel()
	logger := zap.NewNop().Sugar()
	fs := afero.NewMemMapFs()

	osEnvs := FromMap(map[string]string{"FOO": "from-os"})
	envs := LoadDotEnv(logger, osEnvs, fs, []string{"project"})
	assert.Equal(t, []string{"FOO=from-os"}, envs.ToSlice())
}
