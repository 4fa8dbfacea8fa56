package tools

import (
	"context"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/eval"
	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// EvaluateExpressionTool handles one-shot evaluation requests.
// It never touches the shared display.
type EvaluateExpressionTool struct {
	evaluator *eval.Evaluator
}

// NewEvaluateExpressionTool creates a new evaluate expression tool
func NewEvaluateExpressionTool(evaluator *eval.Evaluator) *EvaluateExpressionTool {
	return &EvaluateExpressionTool{
		evaluator: evaluator,
	}
}

// GetTool returns the MCP tool definition
func (t *EvaluateExpressionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolEvaluateExpression,
		mcp.WithDescription("Type an expression on a scratch calculator and evaluate it. "+
			"Input follows keypad rules: a repeated operator replaces the previous one, "+
			"a second decimal point in a number is ignored, and characters without a key are skipped."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Arithmetic expression, e.g. \"3+4*2\"")),
	)
}

// Handle processes the tool request
func (t *EvaluateExpressionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression := mcp.ParseString(req, "expression", "")
	if expression == "" {
		slog.Debug("MCP tool called with missing expression parameter", "tool", ToolEvaluateExpression)
		return mcp.NewToolResultError("expression parameter is required"), nil
	}

	scratch := keypad.NewCalculator(t.evaluator, slog.Default())
	scratch.Type(expression)
	typed := scratch.Display()
	outcome, err := scratch.Press(keypad.LabelEvaluate)
	if err != nil {
		return mcp.NewToolResultError("Failed to evaluate expression: " + err.Error()), nil
	}

	toolResult := results.EvaluateExpressionToolResult{
		Arguments: results.EvaluateExpressionToolArgs{Expression: expression},
		Typed:     typed,
		Result:    results.NewEvalResult(*outcome.Result),
	}
	switch outcome.Result.Kind {
	case eval.KindNone:
		toolResult.Message = "Nothing to evaluate after applying keypad rules."
	case eval.KindError:
		toolResult.Message = "Expression could not be evaluated."
	default:
		toolResult.Message = "Expression evaluated."
	}

	return jsonResult(toolResult)
}
