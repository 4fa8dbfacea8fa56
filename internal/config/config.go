package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/averycrespi/calc-mcp/internal/eval"
	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Environment variables that override values from the config file
const (
	EnvLogLevel = "CALC_MCP_LOG_LEVEL"
	EnvLogFile  = "CALC_MCP_LOG_FILE"
	EnvEngine   = "CALC_MCP_ENGINE"
)

// Default returns the configuration used when no file is given
func Default() types.Config {
	return types.Config{
		LogLevel: "info",
		Engine:   eval.EngineBuiltin,
	}
}

// Load reads the config file at path, applies environment overrides and
// validates the result. An empty path yields the defaults plus overrides.
func Load(path string) (types.Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return types.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := decode(path, data, &cfg); err != nil {
			return types.Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *types.Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

func applyEnv(cfg *types.Config) {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok && v != "" {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvEngine); ok && v != "" {
		cfg.Engine = v
	}
}

// Validate checks that every field holds a supported value
func Validate(cfg types.Config) error {
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Engine != "" && !slices.Contains(eval.EngineNames(), cfg.Engine) {
		return fmt.Errorf("%w: engine %q is not one of %s",
			ErrInvalidConfig, cfg.Engine, strings.Join(eval.EngineNames(), ", "))
	}
	return nil
}
