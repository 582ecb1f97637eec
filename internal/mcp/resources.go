package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/revolutionary-ui/revui/internal/export"
)

const treeURI = "revui://canvas/tree"

func (s *Server) registerResources() {
	// ── revui://canvas/tree ────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		treeURI,
		"Canvas component tree",
		mcp.WithResourceDescription("The current canvas as a JSON component tree"),
		mcp.WithMIMEType("application/json"),
	), s.handleTreeResource)
}

func (s *Server) handleTreeResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := export.JSON(s.session.Components())
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      treeURI,
			MIMEType: "application/json",
			Text:     data,
		},
	}, nil
}
