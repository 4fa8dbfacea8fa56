package results

import (
	"github.com/averycrespi/calc-mcp/internal/eval"
	"github.com/averycrespi/calc-mcp/internal/keypad"
)

// PressedKey describes the effect of a single key press
type PressedKey struct {
	Key      string      `json:"key"`
	Category string      `json:"category"`
	Changed  bool        `json:"changed"`
	Display  string      `json:"display"`
	Result   *EvalResult `json:"result,omitempty"`
}

// EvalResult describes the outcome of an evaluate press
type EvalResult struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// PressKeyToolArgs represents the arguments for the press_key tool
type PressKeyToolArgs struct {
	Key string `json:"key"`
}

// PressKeyToolResult represents the result of the press_key tool
type PressKeyToolResult struct {
	Arguments PressKeyToolArgs `json:"arguments"`
	Message   string           `json:"message"`
	Pressed   PressedKey       `json:"pressed"`
	Display   string           `json:"display"`
}

// PressKeysToolArgs represents the arguments for the press_keys tool
type PressKeysToolArgs struct {
	Keys string `json:"keys"`
}

// PressKeysToolResult represents the result of the press_keys tool
type PressKeysToolResult struct {
	Arguments  PressKeysToolArgs `json:"arguments"`
	Message    string            `json:"message"`
	Pressed    []PressedKey      `json:"pressed"`
	UnknownKey string            `json:"unknown_key,omitempty"`
	Display    string            `json:"display"`
}

// NewPressedKey converts a keypad outcome into its JSON form
func NewPressedKey(outcome keypad.Outcome) PressedKey {
	pressed := PressedKey{
		Key:      outcome.Key.Label,
		Category: outcome.Key.Category.String(),
		Changed:  outcome.Changed,
		Display:  outcome.Display,
	}
	if outcome.Result != nil {
		result := NewEvalResult(*outcome.Result)
		pressed.Result = &result
	}
	return pressed
}

// NewEvalResult converts an evaluation result into its JSON form
func NewEvalResult(result eval.Result) EvalResult {
	converted := EvalResult{
		Kind: result.Kind.String(),
		Text: result.Text,
	}
	if result.Err != nil {
		converted.Error = result.Err.Error()
	}
	return converted
}
