package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool handles press keys requests
type PressKeysTool struct {
	calculator Calculator
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(calculator Calculator) *PressKeysTool {
	return &PressKeysTool{
		calculator: calculator,
	}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press a sequence of calculator keys in order and return the display after each press. "+
			"Pressing stops at the first unknown key."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Whitespace separated key names, e.g. \"3 + 4 × 2 =\"")),
	)
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := mcp.ParseString(req, "keys", "")
	names := strings.Fields(keys)
	if len(names) == 0 {
		slog.Debug("MCP tool called with missing keys parameter", "tool", ToolPressKeys)
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	outcomes, err := t.calculator.PressSequence(names)
	toolResult := results.PressKeysToolResult{
		Arguments: results.PressKeysToolArgs{Keys: keys},
		Pressed:   make([]results.PressedKey, 0, len(outcomes)),
		Display:   t.calculator.Display(),
	}
	for _, outcome := range outcomes {
		toolResult.Pressed = append(toolResult.Pressed, results.NewPressedKey(outcome))
	}

	switch {
	case errors.Is(err, keypad.ErrUnknownKey):
		toolResult.UnknownKey = names[len(outcomes)]
		toolResult.Message = fmt.Sprintf("Pressed %d of %d keys; stopped at unknown key %q.",
			len(outcomes), len(names), toolResult.UnknownKey)
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press keys: %v", err)), nil
	default:
		toolResult.Message = fmt.Sprintf("Pressed %d keys.", len(outcomes))
	}

	return jsonResult(toolResult)
}
