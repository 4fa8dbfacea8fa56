package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeyTool handles press key requests
type PressKeyTool struct {
	calculator Calculator
}

// NewPressKeyTool creates a new press key tool
func NewPressKeyTool(calculator Calculator) *PressKeyTool {
	return &PressKeyTool{
		calculator: calculator,
	}
}

// GetTool returns the MCP tool definition
func (t *PressKeyTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressKey,
		mcp.WithDescription("Press a single calculator key and return the display. "+
			"Accepts button labels (0-9, ., +, -, ×, ÷, =, AC, ⌫) and keyboard names (*, /, Enter, Backspace, Escape)."),
		mcp.WithString("key", mcp.Required(), mcp.Description("Key label or keyboard key name, e.g. \"7\" or \"Enter\"")),
	)
}

// Handle processes the tool request
func (t *PressKeyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := mcp.ParseString(req, "key", "")
	if key == "" {
		slog.Debug("MCP tool called with missing key parameter", "tool", ToolPressKey)
		return mcp.NewToolResultError("key parameter is required"), nil
	}

	outcome, err := t.calculator.Press(key)
	if errors.Is(err, keypad.ErrUnknownKey) {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown key: %q", key)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press key %q: %v", key, err)), nil
	}

	toolResult := results.PressKeyToolResult{
		Arguments: results.PressKeyToolArgs{Key: key},
		Pressed:   results.NewPressedKey(outcome),
		Display:   outcome.Display,
	}
	if outcome.Changed {
		toolResult.Message = "Display updated."
	} else {
		toolResult.Message = "Key had no effect on the display."
	}

	return jsonResult(toolResult)
}
