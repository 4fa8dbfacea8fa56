package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive keypad",
	Long: `Starts the terminal keypad.

Keys:
  0-9 . + - * /   - type
  Enter, =        - evaluate
  Backspace       - delete last character
  Esc             - clear
  ?               - toggle help
  q, Ctrl+C       - quit

Buttons can also be clicked with the mouse. Logs are written only to
--log-file since the keypad owns the terminal.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := setupLogging(cfg, nil)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer closer.Close()

	evaluator, err := newEvaluator(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create evaluator: %w", err)
	}

	p := tea.NewProgram(
		tui.NewModel(keypad.NewCalculator(evaluator, logger)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("keypad failed: %w", err)
	}
	return nil
}
