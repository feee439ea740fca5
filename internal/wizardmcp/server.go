// Package wizardmcp exposes a wizard's navigation operations as MCP tools so
// an agent or script can drive it headlessly.
package wizardmcp

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mark3labs/stepwise/internal/journal"
	"github.com/mark3labs/stepwise/internal/logger"
	"github.com/mark3labs/stepwise/internal/wizard"
)

// Server is an embedded MCP HTTP server in front of one wizard.
// Tool calls are serialized on engineMu because the engine is single-threaded.
type Server struct {
	wiz     *wizard.Wizard
	name    string
	journal *journal.Journal // optional

	engineMu sync.Mutex

	mu        sync.Mutex
	mcpServer *server.MCPServer
	stdServer *http.Server
	port      int
}

// New creates a server for w. The wizard name is used for the MCP server
// identity and journal records. j may be nil.
func New(w *wizard.Wizard, name string, j *journal.Journal) *Server {
	return &Server{wiz: w, name: name, journal: j}
}

// Start starts the MCP HTTP server on 127.0.0.1:port, or a random free port
// when port is 0. It returns the bound port.
func (s *Server) Start(ctx context.Context, port int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return 0, fmt.Errorf("server already started")
	}

	s.mcpServer = server.NewMCPServer(
		"stepwise-"+s.name,
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return 0, fmt.Errorf("failed to listen: %w", err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	))
	s.stdServer = &http.Server{Handler: mux}

	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("MCP server error: %v", err)
		}
	}()

	logger.Info("MCP server for %s ready on port %d", s.name, s.port)
	return s.port, nil
}

// Stop stops the MCP HTTP server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil
	}

	if err := s.stdServer.Shutdown(context.Background()); err != nil {
		logger.Warn("Error stopping MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}

	s.stdServer = nil
	s.mcpServer = nil
	logger.Debug("MCP server stopped")
	return nil
}

// URL returns the HTTP URL for the MCP endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}
