package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/eval"
	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalculatorServer{}

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer  *server.MCPServer
	calculator *keypad.Locked
	evaluator  *eval.Evaluator
	config     types.Config
	logger     *slog.Logger
}

// NewCalculatorServer creates a new calculator MCP server with an empty display
func NewCalculatorServer(config types.Config, logger *slog.Logger) (*CalculatorServer, error) {
	engine, err := eval.NewEngine(config.Engine)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation engine: %w", err)
	}
	evaluator := eval.New(eval.WithEngine(engine), eval.WithLogger(logger))

	s := &CalculatorServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version,
			server.WithToolCapabilities(false),
		),
		calculator: keypad.NewLocked(keypad.NewCalculator(evaluator, logger)),
		evaluator:  evaluator,
		config:     config,
		logger:     logger,
	}
	s.registerTools()
	return s, nil
}

// Serve serves MCP over stdio until the client disconnects
func (s *CalculatorServer) Serve(ctx context.Context) error {
	return s.ServeIO(ctx, os.Stdin, os.Stdout)
}

// ServeIO serves MCP over the given streams until in is exhausted or ctx is done
func (s *CalculatorServer) ServeIO(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("Starting calculator MCP server",
		"version", project.Version,
		"engine", s.evaluator.Engine().Name())

	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	s.logger.Info("Calculator MCP server stopped")
	return nil
}

// MCPServer returns the underlying MCP server
func (s *CalculatorServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Calculator returns the shared calculator the tools operate on
func (s *CalculatorServer) Calculator() tools.Calculator {
	return s.calculator
}

func (s *CalculatorServer) registerTools() {
	pressKeyTool := tools.NewPressKeyTool(s.calculator)
	s.mcpServer.AddTool(pressKeyTool.GetTool(), pressKeyTool.Handle)

	pressKeysTool := tools.NewPressKeysTool(s.calculator)
	s.mcpServer.AddTool(pressKeysTool.GetTool(), pressKeysTool.Handle)

	getDisplayTool := tools.NewGetDisplayTool(s.calculator)
	s.mcpServer.AddTool(getDisplayTool.GetTool(), getDisplayTool.Handle)

	clearDisplayTool := tools.NewClearDisplayTool(s.calculator)
	s.mcpServer.AddTool(clearDisplayTool.GetTool(), clearDisplayTool.Handle)

	getKeypadTool := tools.NewGetKeypadTool()
	s.mcpServer.AddTool(getKeypadTool.GetTool(), getKeypadTool.Handle)

	evaluateTool := tools.NewEvaluateExpressionTool(s.evaluator)
	s.mcpServer.AddTool(evaluateTool.GetTool(), evaluateTool.Handle)
}
