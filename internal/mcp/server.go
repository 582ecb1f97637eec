// Package mcpserver exposes a canvas session as MCP tools so an agent can
// build, inspect and export a component tree.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/revolutionary-ui/revui/internal/cli"
	"github.com/revolutionary-ui/revui/internal/export"
	"github.com/revolutionary-ui/revui/internal/session"
	"github.com/revolutionary-ui/revui/internal/store"
	"github.com/revolutionary-ui/revui/internal/version"
)

const serverName = "revui"

// Server is the MCP server for one canvas.
type Server struct {
	mcp     *server.MCPServer
	session *session.Session
	store   *store.Store
	export  export.Options
	log     *slog.Logger
}

// Deps holds what the server works on. Store may be nil, in which case
// edits live only as long as the process.
type Deps struct {
	Session *session.Session
	Store   *store.Store
	Export  export.Options // defaults for the export tool
	Logger  *slog.Logger
}

// New creates a server with every tool and resource registered.
func New(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if deps.Session == nil {
		deps.Session = session.New(session.Options{Logger: logger})
	}
	if deps.Export.Format == "" {
		deps.Export = export.DefaultOptions()
	}

	s := &Server{
		session: deps.Session,
		store:   deps.Store,
		export:  deps.Export,
		log:     logger.With("component", "mcp"),
	}

	s.mcp = server.NewMCPServer(
		serverName,
		version.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithRecovery(),
	)

	s.registerCatalogTools()
	s.registerTreeTools()
	s.registerOutputTools()
	s.registerResources()

	return s
}

// ServeStdio serves MCP on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	s.log.Info("serving stdio", "canvas", s.session.Name())
	return server.ServeStdio(s.mcp)
}

// ── Helpers ────────────────────────────────────────────────

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

// toolError reports a failure the agent can correct.
func toolError(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultError(msg)
}

func boolPtr(v bool) *bool { return &v }

// persist saves the canvas after an edit.
func (s *Server) persist(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.session.Save(ctx, s.store); err != nil {
		s.log.Error("autosave failed", "error", err)
		return err
	}
	return nil
}

// edited persists and answers with msg followed by the current outline.
func (s *Server) edited(ctx context.Context, msg string) (*mcp.CallToolResult, error) {
	if err := s.persist(ctx); err != nil {
		return toolError(fmt.Sprintf("%s, but saving failed: %v", msg, err)), nil
	}
	return textResult(msg + "\n\n" + s.outline()), nil
}

func (s *Server) outline() string {
	nodes := s.session.Components()
	if len(nodes) == 0 {
		return "(empty canvas)"
	}
	return cli.Outline(nodes, cli.TreeOptions{Selected: s.session.State().SelectedID})
}

// resolve expands an id argument, accepting unique prefixes.
func (s *Server) resolve(req mcp.CallToolRequest, key string) (string, error) {
	ref, err := req.RequireString(key)
	if err != nil {
		return "", err
	}
	return s.session.Resolve(ref)
}

// resolveParent is resolve for optional parent ids; "" and "root" mean the
// canvas root.
func (s *Server) resolveParent(req mcp.CallToolRequest, key string) (string, error) {
	ref := req.GetString(key, "")
	if ref == "" || ref == "root" {
		return "", nil
	}
	return s.session.Resolve(ref)
}

// optionalIndex returns a pointer to the integer argument key, or nil when
// the argument is absent.
func optionalIndex(req mcp.CallToolRequest, key string) *int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return nil
	}
	i := int(v)
	return &i
}
