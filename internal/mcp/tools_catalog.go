package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/export"
	"github.com/revolutionary-ui/revui/internal/registry"
	"github.com/revolutionary-ui/revui/internal/templates"
)

func (s *Server) registerCatalogTools() {
	// ── list_components ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_components",
		mcp.WithDescription("List the component types that can be placed on the canvas, with their editable props and nesting rules."),
		mcp.WithString("category",
			mcp.Description("Only list this category (layout, typography, forms, media, navigation, data)"),
		),
	), s.handleListComponents)

	// ── list_templates ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List the ready-made templates that load_template can add to the canvas."),
	), s.handleListTemplates)

	// ── load_template ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("load_template",
		mcp.WithDescription("Append a copy of a template's components at the end of the canvas."),
		mcp.WithString("id", mcp.Description("Template id from list_templates"), mcp.Required()),
	), s.handleLoadTemplate)

	// ── import_json ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("import_json",
		mcp.WithDescription("Replace the whole canvas with a JSON component tree (the format export produces with format=json). Undo restores the previous tree."),
		mcp.WithString("json", mcp.Description("JSON array of components"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleImportJSON)
}

type componentInfo struct {
	Type            string     `json:"type"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	AcceptsChildren bool       `json:"acceptsChildren"`
	ChildTypes      []string   `json:"childTypes,omitempty"`
	ParentTypes     []string   `json:"parentTypes,omitempty"`
	Props           []propInfo `json:"props"`
}

type propInfo struct {
	Name    string   `json:"name"`
	Kind    string   `json:"kind"`
	Default any      `json:"default,omitempty"`
	Options []string `json:"options,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
}

// ── Handlers ───────────────────────────────────────────────

func (s *Server) handleListComponents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories := registry.Categories()
	if c := req.GetString("category", ""); c != "" {
		if len(registry.ListByCategory(c)) == 0 {
			return toolError(fmt.Sprintf("unknown category %q (known: %s)", c, strings.Join(categories, ", "))), nil
		}
		categories = []string{c}
	}

	var out []componentInfo
	for _, c := range categories {
		for _, d := range registry.ListByCategory(c) {
			info := componentInfo{
				Type:            d.Type,
				Name:            d.Name,
				Category:        d.Category,
				AcceptsChildren: d.AcceptsChildren,
				ChildTypes:      d.ChildTypes,
				ParentTypes:     d.ParentTypes,
			}
			for _, p := range d.Editable {
				info.Props = append(info.Props, propInfo{
					Name:    p.Name,
					Kind:    string(p.Kind),
					Default: p.Default.Any(),
					Options: p.Options,
					Min:     p.Min,
					Max:     p.Max,
				})
			}
			out = append(out, info)
		}
	}
	return jsonResult(out)
}

func (s *Server) handleListTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type templateInfo struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Category    string `json:"category"`
		Description string `json:"description"`
		Nodes       int    `json:"nodes"`
	}
	var out []templateInfo
	for _, t := range templates.All() {
		out = append(out, templateInfo{
			ID:          t.ID,
			Name:        t.Name,
			Category:    t.Category,
			Description: t.Description,
			Nodes:       builder.Count(t.Components),
		})
	}
	return jsonResult(out)
}

func (s *Server) handleLoadTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return toolError(err.Error()), nil
	}
	t := templates.Get(id)
	if t == nil {
		return toolError(fmt.Sprintf("unknown template %q; call list_templates for the available ids", id)), nil
	}
	s.session.Dispatch(builder.LoadTemplate{Components: t.Components})
	return s.edited(ctx, fmt.Sprintf("Loaded template %s (%d components)", t.ID, builder.Count(t.Components)))
}

func (s *Server) handleImportJSON(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := req.RequireString("json")
	if err != nil {
		return toolError(err.Error()), nil
	}
	nodes, err := export.Parse([]byte(data))
	if err != nil {
		return toolError(fmt.Sprintf("invalid component JSON: %v", err)), nil
	}
	s.session.Dispatch(builder.Import{Components: nodes})

	msg := fmt.Sprintf("Imported %d components", builder.Count(nodes))
	if ds := s.session.Analyze(); len(ds.All()) > 0 {
		msg += fmt.Sprintf(" (%d problems; run check_tree)", len(ds.All()))
	}
	return s.edited(ctx, msg)
}
