// Package mcp exposes the calculator engine as an MCP server, so agent
// hosts can call it as a set of tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/domain"
)

// DisplayResponse is the display value an engine event produced.
type DisplayResponse struct {
	Display string `json:"display" jsonschema_description:"The formatted display value"`
}

// LayoutResponse is a mode's declarative keypad.
type LayoutResponse struct {
	Mode string        `json:"mode" jsonschema_description:"The mode the layout belongs to"`
	Keys domain.Layout `json:"keys" jsonschema_description:"Key placements as (id, row, col)"`
}

// Server wraps a Tally engine and exposes it as an MCP Server.
// The engine has no internal locking, so every tool call takes the mutex.
type Server struct {
	mu        sync.Mutex
	engine    *tally.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance around one engine session.
func NewServer(engine *tally.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("tally-mcp", tally.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	calculateTool := mcp.NewTool("calculate",
		mcp.WithDescription("Evaluate an arithmetic expression over + - * / % ( ) and decimal literals."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("The expression to evaluate")),
		mcp.WithOutputSchema[DisplayResponse](),
	)
	s.mcpServer.AddTool(calculateTool, mcp.NewStructuredToolHandler(s.handleCalculate))

	convertTool := mcp.NewTool("convert",
		mcp.WithDescription("Apply a named unit conversion to a number. Use list_operations for valid names."),
		mcp.WithString("operation", mcp.Required(), mcp.Description("Operation id, e.g. \"Mi to Km\"")),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("The value to convert")),
		mcp.WithOutputSchema[DisplayResponse](),
	)
	s.mcpServer.AddTool(convertTool, mcp.NewStructuredToolHandler(s.handleConvert))

	layoutTool := mcp.NewTool("get_layout",
		mcp.WithDescription("Get the declarative keypad layout for a mode."),
		mcp.WithString("mode", mcp.Description("\"Standard\" or \"Convert\" (defaults to the current mode)")),
		mcp.WithOutputSchema[LayoutResponse](),
	)
	s.mcpServer.AddTool(layoutTool, mcp.NewStructuredToolHandler(s.handleLayout))

	s.mcpServer.AddTool(mcp.NewTool("list_operations",
		mcp.WithDescription("List the registered conversion operation ids."),
	), s.handleListOperations)
}

func (s *Server) handleListOperations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(s.engine.Conversions())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal operations: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleCalculate runs a full press sequence for one expression: clear,
// type, equals, clear. The surrounding clears keep tool calls independent
// of each other.
func (s *Server) handleCalculate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DisplayResponse, error) {
	expression, _ := args["expression"].(string)
	if expression == "" {
		return DisplayResponse{}, fmt.Errorf("expression is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.PressClear()
	s.engine.PressToken(expression)
	display := s.engine.PressEquals()
	s.engine.PressClear()

	if display == domain.DisplayError {
		return DisplayResponse{}, fmt.Errorf("invalid expression: %q", expression)
	}
	return DisplayResponse{Display: display}, nil
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DisplayResponse, error) {
	operation, _ := args["operation"].(string)
	value, ok := args["value"].(float64)
	if operation == "" || !ok {
		return DisplayResponse{}, fmt.Errorf("operation and value are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.PressClear()
	s.engine.PressToken(strconv.FormatFloat(value, 'f', -1, 64))
	display, err := s.engine.PressConvert(operation)
	s.engine.PressClear()

	if err != nil {
		return DisplayResponse{}, fmt.Errorf("convert failed: %w", err)
	}
	if display == domain.DisplayError {
		return DisplayResponse{}, fmt.Errorf("value %v is not convertible", value)
	}
	return DisplayResponse{Display: display}, nil
}

func (s *Server) handleLayout(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (LayoutResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mode := s.engine.Mode()
	if name, ok := args["mode"].(string); ok && name != "" {
		parsed, err := domain.ParseMode(name)
		if err != nil {
			return LayoutResponse{}, err
		}
		mode = parsed
	}

	return LayoutResponse{
		Mode: mode.String(),
		Keys: mode.Layout(s.engine.Conversions()),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: tally://operations
	s.mcpServer.AddResource(mcp.NewResource("tally://operations", "Registered Conversion Operations",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Conversions())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal operations: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "tally://operations",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
