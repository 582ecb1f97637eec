package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/revolutionary-ui/revui/internal/analyzer"
	"github.com/revolutionary-ui/revui/internal/builder"
	cerr "github.com/revolutionary-ui/revui/internal/errors"
	"github.com/revolutionary-ui/revui/internal/export"
	"github.com/revolutionary-ui/revui/internal/fixer"
	"github.com/revolutionary-ui/revui/internal/registry"
)

func (s *Server) registerOutputTools() {
	// ── drop_at ────────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("drop_at",
		mcp.WithDescription("Simulate a drag-and-drop: release a new component type, or an existing component, at canvas coordinates. The nearest drop zone within reach decides where it lands."),
		mcp.WithString("type", mcp.Description("Component type to drop from the palette (set this or id)")),
		mcp.WithString("id", mcp.Description("Existing component id or prefix to drag (set this or type)")),
		mcp.WithNumber("x", mcp.Description("Pointer X in canvas pixels"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Pointer Y in canvas pixels"), mcp.Required()),
	), s.handleDropAt)

	// ── check_tree ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("check_tree",
		mcp.WithDescription("Validate the canvas (or a JSON tree) for duplicate ids, unknown types, invalid nesting and out-of-range props"),
		mcp.WithString("json", mcp.Description("JSON tree to check instead of the canvas (optional)")),
		mcp.WithBoolean("fix", mcp.Description("Repair what can be fixed safely: fresh ids for duplicates, typos in types and prop names, out-of-range values, misplaced children. On the canvas this is one undoable edit; for json the repaired tree is returned.")),
	), s.handleCheckTree)

	// ── export ─────────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("export",
		mcp.WithDescription("Render the canvas as framework source code, a component-factory config, or JSON"),
		mcp.WithString("format", mcp.Description("code, factory or json"), mcp.Enum(export.Formats()...)),
		mcp.WithString("framework", mcp.Description("react, vue, angular or svelte"), mcp.Enum(export.Frameworks()...)),
		mcp.WithString("styling", mcp.Description("css, scss, plain or tailwind (code only)"), mcp.Enum(export.Stylings()...)),
		mcp.WithBoolean("typescript", mcp.Description("Emit TypeScript where the framework supports it")),
		mcp.WithBoolean("includeImports", mcp.Description("Emit import statements")),
		mcp.WithString("componentName", mcp.Description("Name of the generated component")),
	), s.handleExport)
}

// ── Handlers ───────────────────────────────────────────────

func (s *Server) handleDropAt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	x, okX := args["x"].(float64)
	y, okY := args["y"].(float64)
	if !okX || !okY {
		return toolError("x and y are required"), nil
	}

	var item builder.DragItem
	switch typ, ref := req.GetString("type", ""), req.GetString("id", ""); {
	case typ != "" && ref != "":
		return toolError("set either type or id, not both"), nil
	case typ != "":
		if registry.Get(typ) == nil {
			return toolError(fmt.Sprintf("unknown component type %q", typ)), nil
		}
		item = builder.DragItem{Type: registry.Get(typ).Type, IsNew: true}
	case ref != "":
		id, err := s.session.Resolve(ref)
		if err != nil {
			return toolError(err.Error()), nil
		}
		item = builder.DragItem{ID: id, Type: builder.Find(s.session.Components(), id).Type}
	default:
		return toolError("type or id is required"), nil
	}

	a, changed, err := s.session.DropAt(item, builder.Point{X: x, Y: y})
	if err != nil {
		return toolError(err.Error()), nil
	}
	if a == nil {
		return textResult(fmt.Sprintf("Nothing happened: no drop zone accepts %s near (%g, %g)", item.Type, x, y)), nil
	}
	if !changed {
		return textResult(fmt.Sprintf("No change: %s already sits there", item.Type)), nil
	}
	return s.edited(ctx, fmt.Sprintf("Dropped %s (%s)", item.Type, a.Kind()))
}

func (s *Server) handleCheckTree(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type report struct {
		Errors      int                `json:"errors"`
		Warnings    int                `json:"warnings"`
		Diagnostics []*cerr.Diagnostic `json:"diagnostics"`
		Fixes       []fixer.Fix        `json:"fixes,omitempty"`
		Fixed       json.RawMessage    `json:"fixed,omitempty"` // repaired input tree
	}
	fix := req.GetBool("fix", false)

	var ds *cerr.Diagnostics
	var r report
	if data := req.GetString("json", ""); data != "" {
		nodes, err := export.Parse([]byte(data))
		if err != nil {
			return toolError(fmt.Sprintf("invalid component JSON: %v", err)), nil
		}
		if fix {
			res := fixer.Repair(nodes, "input")
			out, err := export.JSON(res.Components)
			if err != nil {
				return nil, err
			}
			ds, r.Fixes, r.Fixed = res.Remaining, res.Fixes, json.RawMessage(out)
		} else {
			ds = analyzer.Analyze(nodes, "input")
		}
	} else if fix {
		res := s.session.Repair()
		if res.Changed() {
			if err := s.persist(ctx); err != nil {
				return toolError(fmt.Sprintf("repaired the canvas, but saving failed: %v", err)), nil
			}
		}
		ds, r.Fixes = res.Remaining, res.Fixes
	} else {
		ds = s.session.Analyze()
	}

	r.Errors = len(ds.Errors())
	r.Warnings = len(ds.Warnings())
	r.Diagnostics = append([]*cerr.Diagnostic{}, ds.All()...)
	return jsonResult(r)
}

func (s *Server) handleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := s.export
	opts.Format = export.Format(req.GetString("format", string(opts.Format)))
	opts.Framework = export.Framework(req.GetString("framework", string(opts.Framework)))
	opts.Styling = export.Styling(req.GetString("styling", string(opts.Styling)))
	opts.TypeScript = req.GetBool("typescript", opts.TypeScript)
	opts.IncludeImports = req.GetBool("includeImports", opts.IncludeImports)
	opts.ComponentName = req.GetString("componentName", opts.ComponentName)

	out, err := s.session.Export(opts)
	if err != nil {
		var unsupported *export.UnsupportedError
		if errors.As(err, &unsupported) {
			return toolError(unsupported.Error()), nil
		}
		return nil, err
	}
	return textResult(out), nil
}
