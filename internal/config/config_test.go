package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/averycrespi/calc-mcp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected types.Config
	}{
		{
			name:     "TOML config",
			file:     "calc.toml",
			content:  "log_level = \"debug\"\nlog_file = \"/tmp/calc.log\"\nengine = \"govaluate\"\n",
			expected: types.Config{LogLevel: "debug", LogFile: "/tmp/calc.log", Engine: "govaluate"},
		},
		{
			name:     "YAML config",
			file:     "calc.yaml",
			content:  "log_level: warn\nengine: builtin\n",
			expected: types.Config{LogLevel: "warn", Engine: "builtin"},
		},
		{
			name:     "YML extension with defaults",
			file:     "calc.yml",
			content:  "log_file: calc.log\n",
			expected: types.Config{LogLevel: "info", LogFile: "calc.log", Engine: "builtin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvEngine, "govaluate")

	cfg, err := Load(writeConfig(t, "calc.toml", "log_level = \"debug\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "govaluate", cfg.Engine)
}

func TestLoadErrors(t *testing.T) {
	t.Run("Unsupported extension", func(t *testing.T) {
		_, err := Load(writeConfig(t, "calc.json", "{}"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed TOML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "calc.toml", "log_level = "))
		assert.Error(t, err)
	})

	t.Run("Unknown engine", func(t *testing.T) {
		_, err := Load(writeConfig(t, "calc.toml", "engine = \"javascript\"\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Unknown log level", func(t *testing.T) {
		_, err := Load(writeConfig(t, "calc.yaml", "log_level: loud\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
