package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetDisplayTool handles get display requests
type GetDisplayTool struct {
	calculator Calculator
}

// NewGetDisplayTool creates a new get display tool
func NewGetDisplayTool(calculator Calculator) *GetDisplayTool {
	return &GetDisplayTool{
		calculator: calculator,
	}
}

// GetTool returns the MCP tool definition
func (t *GetDisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetDisplay,
		mcp.WithDescription("Return the text currently shown on the calculator display"),
	)
}

// Handle processes the tool request
func (t *GetDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	display := t.calculator.Display()
	toolResult := results.DisplayToolResult{Display: display}
	if display == "" {
		toolResult.Message = "Display is empty."
	} else {
		toolResult.Message = "Display shows the current expression or result."
	}
	return jsonResult(toolResult)
}

// ClearDisplayTool handles clear display requests
type ClearDisplayTool struct {
	calculator Calculator
}

// NewClearDisplayTool creates a new clear display tool
func NewClearDisplayTool(calculator Calculator) *ClearDisplayTool {
	return &ClearDisplayTool{
		calculator: calculator,
	}
}

// GetTool returns the MCP tool definition
func (t *ClearDisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClearDisplay,
		mcp.WithDescription("Clear the calculator display, the same as pressing AC"),
	)
}

// Handle processes the tool request
func (t *ClearDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outcome, err := t.calculator.Press(keypad.LabelClear)
	if err != nil {
		return mcp.NewToolResultError("Failed to clear display: " + err.Error()), nil
	}
	return jsonResult(results.DisplayToolResult{
		Message: "Display cleared.",
		Display: outcome.Display,
	})
}
