package builder

import "github.com/revolutionary-ui/revui/internal/props"

// Action is an edit the reducer understands.
type Action interface {
	// Kind names the action for logs and tool output.
	Kind() string
}

// Add inserts a new node of Type built from registry defaults. An empty
// ParentID targets the canvas root; a nil Index appends.
type Add struct {
	Type     string
	ParentID string
	Index    *int
}

// Update shallow-merges Props into the node's props.
type Update struct {
	ID    string
	Props props.Props
}

// Rename changes a node's label.
type Rename struct {
	ID   string
	Name string
}

// SetLocked locks or unlocks a node on the canvas.
type SetLocked struct {
	ID     string
	Locked bool
}

// SetVisible shows or hides a node on the canvas.
type SetVisible struct {
	ID      string
	Visible bool
}

// Delete removes a node and its subtree.
type Delete struct {
	ID string
}

// Move detaches a subtree and reinserts it under ParentID. Index is a drop
// zone index: it counts positions in the target sibling list as it was
// before the node was detached.
type Move struct {
	ID       string
	ParentID string
	Index    int
}

// Duplicate clones a subtree with fresh ids right after the original.
type Duplicate struct {
	ID string
}

// Select marks a node as selected.
type Select struct {
	ID string
}

// ClearSelection drops the selection.
type ClearSelection struct{}

// Hover marks the node under the pointer. An empty ID clears it.
type Hover struct {
	ID string
}

// SetDragged records the item of an in-flight drag gesture, nil when idle.
type SetDragged struct {
	Item *DragItem
}

// SetDropZones replaces the registered drop zones.
type SetDropZones struct {
	Zones []DropZone
}

// UpdateSettings replaces the canvas settings.
type UpdateSettings struct {
	Settings Settings
}

// Undo steps back one snapshot.
type Undo struct{}

// Redo steps forward one snapshot.
type Redo struct{}

// LoadTemplate appends copies of a template's nodes at the canvas root.
type LoadTemplate struct {
	Components []*Node
}

// Import replaces the whole tree.
type Import struct {
	Components []*Node
}

// Clear empties the canvas.
type Clear struct{}

func (Add) Kind() string            { return "ADD_COMPONENT" }
func (Update) Kind() string         { return "UPDATE_COMPONENT" }
func (Rename) Kind() string         { return "RENAME_COMPONENT" }
func (SetLocked) Kind() string      { return "SET_LOCKED" }
func (SetVisible) Kind() string     { return "SET_VISIBLE" }
func (Delete) Kind() string         { return "DELETE_COMPONENT" }
func (Move) Kind() string           { return "MOVE_COMPONENT" }
func (Duplicate) Kind() string      { return "DUPLICATE_COMPONENT" }
func (Select) Kind() string         { return "SELECT_COMPONENT" }
func (ClearSelection) Kind() string { return "CLEAR_SELECTION" }
func (Hover) Kind() string          { return "HOVER_COMPONENT" }
func (SetDragged) Kind() string     { return "SET_DRAGGED_ITEM" }
func (SetDropZones) Kind() string   { return "SET_DROP_ZONES" }
func (UpdateSettings) Kind() string { return "UPDATE_SETTINGS" }
func (Undo) Kind() string           { return "UNDO" }
func (Redo) Kind() string           { return "REDO" }
func (LoadTemplate) Kind() string   { return "LOAD_TEMPLATE" }
func (Import) Kind() string         { return "IMPORT_COMPONENTS" }
func (Clear) Kind() string          { return "CLEAR_CANVAS" }

// At returns a pointer to i, for Add.Index.
func At(i int) *int { return &i }
