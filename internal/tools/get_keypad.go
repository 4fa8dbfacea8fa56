package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetKeypadTool handles get keypad requests
type GetKeypadTool struct{}

// NewGetKeypadTool creates a new get keypad tool
func NewGetKeypadTool() *GetKeypadTool {
	return &GetKeypadTool{}
}

// GetTool returns the MCP tool definition
func (t *GetKeypadTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetKeypad,
		mcp.WithDescription("Return the calculator keypad layout, row by row, with each key's category"),
	)
}

// Handle processes the tool request
func (t *GetKeypadTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(results.GetKeypadToolResult{
		Message: "Hidden keys are empty cells and cannot be pressed.",
		Rows:    results.NewKeypadRows(keypad.Rows()),
	})
}
