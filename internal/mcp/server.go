// ABOUTME: MCP server setup for the gym store.
// ABOUTME: Wraps the MCP server with the repository and the optional lookup services.
package mcp

import (
	"context"

	"github.com/harperreed/gymtrack/internal/exercisedb"
	"github.com/harperreed/gymtrack/internal/gdrive"
	"github.com/harperreed/gymtrack/internal/prefs"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Services are the collaborators beyond the repository. Any of them may be
// nil, in which case the tools that need it report it as unavailable.
type Services struct {
	Prefs   *prefs.Store
	Lookup  *exercisedb.Client
	Images  *gdrive.Client
	Folders []string
}

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	svc       Services
}

// NewServer creates a new MCP server over repo.
func NewServer(repo storage.Repository, svc Services) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gymtrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		svc:       svc,
	}

	s.registerTools()
	s.registerLookupTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
