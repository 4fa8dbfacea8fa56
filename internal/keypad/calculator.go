package keypad

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/eval"
)

var ErrUnknownKey = errors.New("unknown key")

// Outcome describes the effect of one key press
type Outcome struct {
	Key     Key
	Changed bool
	Display string
	// Result is set for evaluate presses
	Result *eval.Result
}

type handler func(c *Calculator, key Key) Outcome

// Calculator owns one buffer and one evaluator and dispatches key presses to them.
// It is not safe for concurrent use; callers serialize events.
type Calculator struct {
	buffer    *calc.Buffer
	evaluator *eval.Evaluator
	logger    *slog.Logger
	handlers  map[Category]handler
}

// NewCalculator creates a calculator with an empty buffer
func NewCalculator(evaluator *eval.Evaluator, logger *slog.Logger) *Calculator {
	if evaluator == nil {
		evaluator = eval.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		buffer:    calc.NewBuffer(),
		evaluator: evaluator,
		logger:    logger,
		handlers: map[Category]handler{
			CategoryDigit:    appendSymbol,
			CategoryOperator: appendSymbol,
			CategoryDecimal:  appendSymbol,
			CategoryClear:    clearBuffer,
			CategoryDelete:   deleteLast,
			CategoryEvaluate: evaluate,
		},
	}
}

// Press handles a key by button label or keyboard name
func (c *Calculator) Press(name string) (Outcome, error) {
	key, ok := Lookup(name)
	if !ok {
		return Outcome{Display: c.Display()}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return c.PressKey(key), nil
}

// PressKey handles a resolved key
func (c *Calculator) PressKey(key Key) Outcome {
	h, ok := c.handlers[key.Category]
	if !ok {
		return Outcome{Key: key, Display: c.Display()}
	}
	outcome := h(c, key)
	outcome.Key = key
	outcome.Display = c.Display()

	c.logger.Debug("Key pressed",
		"key", key.Label,
		"category", key.Category.String(),
		"changed", outcome.Changed,
		"display", outcome.Display)
	return outcome
}

// Type presses each rune of text in order. Runes with no key are skipped.
func (c *Calculator) Type(text string) []Outcome {
	outcomes := make([]Outcome, 0, len(text))
	for _, r := range text {
		key, ok := Lookup(string(r))
		if !ok {
			c.logger.Debug("Skipping rune with no key", "rune", string(r))
			continue
		}
		outcomes = append(outcomes, c.PressKey(key))
	}
	return outcomes
}

// Display returns the buffer text shown to the user
func (c *Calculator) Display() string {
	return c.buffer.Contents()
}

// Evaluator returns the evaluator the calculator uses
func (c *Calculator) Evaluator() *eval.Evaluator {
	return c.evaluator
}

func appendSymbol(c *Calculator, key Key) Outcome {
	return Outcome{Changed: c.buffer.Append(key.Symbol)}
}

func clearBuffer(c *Calculator, _ Key) Outcome {
	changed := !c.buffer.IsEmpty()
	c.buffer.Clear()
	return Outcome{Changed: changed}
}

func deleteLast(c *Calculator, _ Key) Outcome {
	return Outcome{Changed: c.buffer.DeleteLast()}
}

func evaluate(c *Calculator, _ Key) Outcome {
	before := c.buffer.Contents()
	result := c.evaluator.Evaluate(before)
	if result.Replaces() {
		c.buffer.Replace(result.Text)
	}
	return Outcome{Changed: c.buffer.Contents() != before, Result: &result}
}
