package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/internal/eval"
	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

var (
	cfgFile  string
	logLevel string
	logFile  string
	engine   string
)

var rootCmd = &cobra.Command{
	Use:   "calc-mcp",
	Short: "Keypad calculator for the terminal and for MCP clients",
	Long: `calc-mcp is a four-function keypad calculator.

The display accumulates an expression under keypad rules: a repeated
operator replaces the previous one, a number holds at most one decimal
point, and only minus may start an expression. Pressing = evaluates the
display with the usual precedence and replaces it with the result.

Commands:
  serve  - MCP server on stdio exposing the keypad as tools
  tui    - interactive keypad in the terminal
  eval   - evaluate an expression once and print the result`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&engine, "engine", "", "Evaluation engine (builtin, govaluate)")
}

// loadConfig reads the config file and applies flags given on the command line
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return types.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("engine") {
		cfg.Engine = engine
	}
	if err := config.Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// setupLogging installs the default logger; stderr may be nil to keep the terminal clean
func setupLogging(cfg types.Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Stderr: stderr,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	slog.SetDefault(logger)
	return logger, closer, nil
}

func newEvaluator(cfg types.Config, logger *slog.Logger) (*eval.Evaluator, error) {
	e, err := eval.NewEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}
	return eval.New(eval.WithEngine(e), eval.WithLogger(logger)), nil
}

