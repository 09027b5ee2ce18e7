// Package server assembles the MCP server from the tool registry and runs
// it over stdio or streamable HTTP.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lucasferreyra/astroexplorer/internal/domain/tool"
	"github.com/lucasferreyra/astroexplorer/internal/infra/config"
	"github.com/lucasferreyra/astroexplorer/internal/infra/eventbus"
	"github.com/lucasferreyra/astroexplorer/internal/infra/tap"
	"github.com/lucasferreyra/astroexplorer/internal/version"
)

// Name is the MCP implementation name announced to clients.
const Name = "Astronomy-Explorer"

// Server holds the assembled MCP server and its transports.
type Server struct {
	cfg      config.Config
	registry *tool.Registry
	tapSvc   *tap.Service
	bus      eventbus.EventBus
	mcp      *mcp.Server
}

// New assembles the MCP server: every registry definition becomes an MCP
// tool whose handler delegates to the registered executor.
func New(cfg config.Config, registry *tool.Registry, tapSvc *tap.Service, bus eventbus.EventBus) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		registry: registry,
		tapSvc:   tapSvc,
		bus:      bus,
		mcp:      mcp.NewServer(&mcp.Implementation{Name: Name, Version: version.Version}, nil),
	}

	for _, def := range registry.Definitions() {
		executor, err := registry.Get(def.Name)
		if err != nil {
			return nil, err
		}
		s.mcp.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			out := executor.Execute(ctx, req.Params.Arguments)
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: out}},
			}, nil
		})
	}

	return s, nil
}

// RunStdio serves MCP over stdin/stdout until ctx is canceled. Logging goes
// to stderr so stdout stays a clean JSON-RPC stream.
func (s *Server) RunStdio(ctx context.Context) error {
	go s.logInvocations(ctx)
	log.Printf("%s serving MCP over stdio", Name)
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP at /mcp plus a /healthz probe,
// shutting down gracefully when ctx is canceled.
func (s *Server) RunHTTP(ctx context.Context) error {
	go s.logInvocations(ctx)

	httpServer := &http.Server{
		Addr:        s.cfg.HTTPAddr,
		Handler:     s.handler(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
		// No WriteTimeout: /mcp streams responses for the lifetime of
		// the session.
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("%s serving MCP over HTTP on %s", Name, httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handler() http.Handler {
	r := chi.NewRouter()
	r.Mount("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.mcp }, nil))
	r.Get("/healthz", s.handleHealthz)
	return r
}

// handleHealthz pings the archive; a failing upstream reports 503 so load
// balancers stop routing here.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.tapSvc.Health(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("tap unreachable: " + err.Error())) //nolint:errcheck
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok")) //nolint:errcheck
}

// logInvocations consumes execution events and writes one log line per
// tool call until ctx is canceled.
func (s *Server) logInvocations(ctx context.Context) {
	if s.bus == nil {
		return
	}
	ch := s.bus.Subscribe(tool.TopicExecuted)
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-ch:
			exec, ok := evt.Payload.(tool.ExecutionEvent)
			if !ok {
				continue
			}
			log.Printf("tool=%s status=%s elapsed=%s", exec.Tool, exec.Status, exec.Elapsed)
		}
	}
}
