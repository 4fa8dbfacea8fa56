package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/averycrespi/calc-mcp/internal/eval"
	"github.com/averycrespi/calc-mcp/internal/keypad"
)

var showTyped bool

var evalCmd = &cobra.Command{
	Use:   "eval [--] <expression>...",
	Short: "Evaluate an expression once",
	Long: `Types the expression on a fresh keypad and presses =.

Arguments are joined with spaces; characters without a key are skipped,
so "3 + 4 * 2" and "3+4*2" are the same. Prints the display after
evaluation: a number, or Error.

An expression that starts with minus must follow "--" so it is not read
as a flag:

  calc-mcp eval -- -5+3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&showTyped, "show-typed", false, "Also print the display as typed, before evaluation")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := setupLogging(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer closer.Close()

	evaluator, err := newEvaluator(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create evaluator: %w", err)
	}

	display, typed := evaluate(evaluator, strings.Join(args, " "))
	out := cmd.OutOrStdout()
	if showTyped {
		fmt.Fprintln(out, typed)
	}
	fmt.Fprintln(out, display)
	return nil
}

// evaluate types expr on a scratch calculator and returns the display after
// pressing = together with the display before it
func evaluate(evaluator *eval.Evaluator, expr string) (display, typed string) {
	c := keypad.NewCalculator(evaluator, nil)
	c.Type(expr)
	typed = c.Display()
	outcome := c.PressKey(keypad.Key{Label: keypad.LabelEvaluate, Category: keypad.CategoryEvaluate})
	return outcome.Display, typed
}
