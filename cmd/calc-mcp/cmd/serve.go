package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/averycrespi/calc-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the keypad as MCP tools over stdio",
	Long: `Starts an MCP server on stdin/stdout. All tool calls share one display.

Tools:
  press_key            - press one key
  press_keys           - press whitespace separated keys in order
  get_display          - read the display
  clear_display        - clear the display
  get_keypad           - list the keypad layout
  evaluate_expression  - evaluate an expression on a scratch display

Logs go to stderr and, with --log-file, to a JSON log file.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := setupLogging(cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer closer.Close()

	s, err := server.NewCalculatorServer(cfg, logger)
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Serve(ctx); err != nil {
		logger.Error("Server error", "error", err)
		return err
	}
	return nil
}
