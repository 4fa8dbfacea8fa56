package tools

import (
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolPressKey           = "press_key"
	ToolPressKeys          = "press_keys"
	ToolGetDisplay         = "get_display"
	ToolClearDisplay       = "clear_display"
	ToolGetKeypad          = "get_keypad"
	ToolEvaluateExpression = "evaluate_expression"
)

// Calculator is the keypad state shared by the tools.
// Implementations serialize calls so each press completes before the next.
type Calculator interface {
	Press(name string) (keypad.Outcome, error)
	// PressSequence presses names in order as one event, stopping at the first unknown key
	PressSequence(names []string) ([]keypad.Outcome, error)
	Display() string
}

// jsonResult marshals a tool result as indented JSON text
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
