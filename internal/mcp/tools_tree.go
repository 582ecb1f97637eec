package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/export"
	"github.com/revolutionary-ui/revui/internal/props"
	"github.com/revolutionary-ui/revui/internal/registry"
	"github.com/revolutionary-ui/revui/internal/session"
)

func (s *Server) registerTreeTools() {
	// ── get_tree ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_tree",
		mcp.WithDescription("Show the canvas component tree. Outline is compact; json includes every prop."),
		mcp.WithString("format",
			mcp.Description("outline (default) or json"),
			mcp.Enum("outline", "json"),
		),
	), s.handleGetTree)

	// ── add_component ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_component",
		mcp.WithDescription("Add a component with its default props. Returns the new id."),
		mcp.WithString("type", mcp.Description("Component type from list_components"), mcp.Required()),
		mcp.WithString("parentId", mcp.Description("Parent component id or unique prefix (optional, defaults to the canvas root)")),
		mcp.WithNumber("index", mcp.Description("Position among the parent's children (optional, defaults to last)")),
	), s.handleAddComponent)

	// ── update_component ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("update_component",
		mcp.WithDescription("Merge props into a component. Values may be strings, numbers, booleans or string arrays."),
		mcp.WithString("id", mcp.Description("Component id or unique prefix"), mcp.Required()),
		mcp.WithObject("props", mcp.Description("Props to set, e.g. {\"text\": \"Hello\", \"level\": \"h2\"}"), mcp.Required()),
	), s.handleUpdateComponent)

	// ── rename_component ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("rename_component",
		mcp.WithDescription("Change a component's label in the tree"),
		mcp.WithString("id", mcp.Description("Component id or unique prefix"), mcp.Required()),
		mcp.WithString("name", mcp.Description("New label"), mcp.Required()),
	), s.handleRenameComponent)

	// ── delete_component (destructive) ─────────────────
	s.mcp.AddTool(mcp.NewTool("delete_component",
		mcp.WithDescription("Delete a component and everything inside it. Undo restores it."),
		mcp.WithString("id", mcp.Description("Component id or unique prefix"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteComponent)

	// ── move_component ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("move_component",
		mcp.WithDescription("Move a component (with its children) under a new parent. The index counts positions in the target list before the component is taken out."),
		mcp.WithString("id", mcp.Description("Component id or unique prefix"), mcp.Required()),
		mcp.WithString("parentId", mcp.Description("New parent id, or \"root\" for the canvas"), mcp.Required()),
		mcp.WithNumber("index", mcp.Description("Drop position in the target list"), mcp.Required()),
	), s.handleMoveComponent)

	// ── duplicate_component ────────────────────────────
	s.mcp.AddTool(mcp.NewTool("duplicate_component",
		mcp.WithDescription("Copy a component and its children right after the original, with fresh ids"),
		mcp.WithString("id", mcp.Description("Component id or unique prefix"), mcp.Required()),
	), s.handleDuplicateComponent)

	// ── undo / redo ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("undo",
		mcp.WithDescription("Undo the last edit to the tree"),
	), s.handleUndo)
	s.mcp.AddTool(mcp.NewTool("redo",
		mcp.WithDescription("Redo the last undone edit"),
	), s.handleRedo)
}

// ── Handlers ───────────────────────────────────────────────

func (s *Server) handleGetTree(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch req.GetString("format", "outline") {
	case "json":
		out, err := export.JSON(s.session.Components())
		if err != nil {
			return nil, err
		}
		return textResult(out), nil
	case "outline":
		st := s.session.State()
		return textResult(fmt.Sprintf("%s\n\n%d components, undo %d, redo %d",
			s.outline(), builder.Count(st.Components), len(st.History.Past), len(st.History.Future))), nil
	default:
		return toolError("format must be outline or json"), nil
	}
}

func (s *Server) handleAddComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	typ, err := req.RequireString("type")
	if err != nil {
		return toolError(err.Error()), nil
	}
	parent, err := s.resolveParent(req, "parentId")
	if err != nil {
		return toolError(err.Error()), nil
	}
	id, err := s.session.Add(typ, parent, optionalIndex(req, "index"))
	if err != nil {
		return toolError(err.Error()), nil
	}
	return s.edited(ctx, fmt.Sprintf("Added %s %s", registry.Get(typ).Type, id))
}

func (s *Server) handleUpdateComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := s.resolve(req, "id")
	if err != nil {
		return toolError(err.Error()), nil
	}
	patch, err := propsArg(req.GetArguments()["props"])
	if err != nil {
		return toolError(err.Error()), nil
	}

	n := builder.Find(s.session.Components(), id)
	var warnings []string
	if def := registry.Get(n.Type); def != nil {
		for _, k := range patch.Keys() {
			if err := registry.ValidateProp(def, k, patch[k]); err != nil {
				warnings = append(warnings, err.Error())
			}
		}
	}

	if err := s.session.Update(id, patch); err != nil {
		if errors.Is(err, session.ErrNoChange) {
			return textResult("No change: the props already have these values"), nil
		}
		return toolError(err.Error()), nil
	}
	msg := fmt.Sprintf("Updated %s", id)
	for _, w := range warnings {
		msg += "\nwarning: " + w
	}
	return s.edited(ctx, msg)
}

func (s *Server) handleRenameComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := s.resolve(req, "id")
	if err != nil {
		return toolError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return toolError(err.Error()), nil
	}
	if err := s.session.Rename(id, name); err != nil && !errors.Is(err, session.ErrNoChange) {
		return toolError(err.Error()), nil
	}
	return s.edited(ctx, fmt.Sprintf("Renamed %s to %q", id, name))
}

func (s *Server) handleDeleteComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := s.resolve(req, "id")
	if err != nil {
		return toolError(err.Error()), nil
	}
	removed := builder.Count([]*builder.Node{builder.Find(s.session.Components(), id)})
	if err := s.session.Delete(id); err != nil {
		return toolError(err.Error()), nil
	}
	return s.edited(ctx, fmt.Sprintf("Deleted %s (%d components removed)", id, removed))
}

func (s *Server) handleMoveComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := s.resolve(req, "id")
	if err != nil {
		return toolError(err.Error()), nil
	}
	parent, err := s.resolveParent(req, "parentId")
	if err != nil {
		return toolError(err.Error()), nil
	}
	index := optionalIndex(req, "index")
	if index == nil {
		return toolError("index is required"), nil
	}
	if err := s.session.Move(id, parent, *index); err != nil {
		if errors.Is(err, session.ErrNoChange) {
			return textResult("No change: the component is already there"), nil
		}
		return toolError(err.Error()), nil
	}
	return s.edited(ctx, fmt.Sprintf("Moved %s", id))
}

func (s *Server) handleDuplicateComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := s.resolve(req, "id")
	if err != nil {
		return toolError(err.Error()), nil
	}
	clone, err := s.session.Duplicate(id)
	if err != nil {
		return toolError(err.Error()), nil
	}
	return s.edited(ctx, fmt.Sprintf("Duplicated %s as %s", id, clone))
}

func (s *Server) handleUndo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.session.Undo() {
		return textResult("Nothing to undo"), nil
	}
	return s.edited(ctx, "Undone")
}

func (s *Server) handleRedo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.session.Redo() {
		return textResult("Nothing to redo"), nil
	}
	return s.edited(ctx, "Redone")
}

// propsArg accepts props either as a JSON object or as a string holding one.
func propsArg(raw any) (props.Props, error) {
	switch v := raw.(type) {
	case map[string]any:
		return props.FromMap(v)
	case string:
		var m map[string]any
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			return nil, fmt.Errorf("props must be a JSON object: %w", err)
		}
		return props.FromMap(m)
	case nil:
		return nil, errors.New("props is required")
	default:
		return nil, fmt.Errorf("props must be an object, got %T", raw)
	}
}
