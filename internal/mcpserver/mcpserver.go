// Package mcpserver exposes funcspace over the Model Context Protocol.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers the funcspace tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all tools and prompts registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "funcspace",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	s.registerPrompts()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.RunWithTransport(ctx, &mcp.StdioTransport{})
}

// RunWithTransport serves a single session over t until it ends or ctx is
// cancelled.
func (s *Server) RunWithTransport(ctx context.Context, t mcp.Transport) error {
	return s.server.Run(ctx, t)
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "function_spaces",
		Description: describeFunctionSpaces(),
	}, handleFunctionSpaces)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "operators_operands",
		Description: describeOperatorsOperands(),
	}, handleOperatorsOperands)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "languages",
		Description: describeLanguages(),
	}, handleLanguages)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_project",
		Description: describeAnalyzeProject(),
	}, handleAnalyzeProject)
}
