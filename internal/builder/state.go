package builder

// MaxHistory caps the number of past snapshots kept for undo.
const MaxHistory = 50

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// DropZone is a candidate insertion point measured from the rendered tree.
// ParentID is empty for the canvas root.
type DropZone struct {
	ID       string `json:"id"`
	ParentID string `json:"parentId"`
	Index    int    `json:"index"`
	Rect     Rect   `json:"rect"`
}

// DragItem describes what is being dragged: a palette entry (IsNew) or an
// existing node.
type DragItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	SourceIndex int    `json:"sourceIndex,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
	IsNew       bool   `json:"isNew"`
}

// Settings are canvas preferences. They are UI state and never historied.
type Settings struct {
	ShowGrid   bool    `json:"showGrid" yaml:"show_grid"`
	SnapToGrid bool    `json:"snapToGrid" yaml:"snap_to_grid"`
	GridSize   float64 `json:"gridSize" yaml:"grid_size"`
	Device     string  `json:"device" yaml:"device"` // "desktop", "tablet", "mobile"
	Zoom       float64 `json:"zoom" yaml:"zoom"`
}

// DefaultSettings returns the settings a fresh canvas starts with.
func DefaultSettings() Settings {
	return Settings{
		ShowGrid:   true,
		SnapToGrid: false,
		GridSize:   8,
		Device:     "desktop",
		Zoom:       1,
	}
}

// History is the linear undo/redo record of full-tree snapshots.
type History struct {
	Past    [][]*Node `json:"past"`
	Present []*Node   `json:"present"`
	Future  [][]*Node `json:"future"`
}

// CanUndo reports whether there is a snapshot to go back to.
func (h History) CanUndo() bool { return len(h.Past) > 0 }

// CanRedo reports whether there is an undone snapshot to restore.
func (h History) CanRedo() bool { return len(h.Future) > 0 }

// State is everything the builder canvas needs.
type State struct {
	Components []*Node
	SelectedID string
	HoveredID  string
	Dragged    *DragItem
	DropZones  []DropZone
	History    History
	Settings   Settings
}

// New returns an empty canvas state.
func New(settings Settings) *State {
	empty := []*Node{}
	return &State{
		Components: empty,
		History:    History{Present: empty},
		Settings:   settings,
	}
}

// Restore rebuilds a state from persisted snapshots. The past is trimmed to
// MaxHistory entries.
func Restore(components []*Node, past, future [][]*Node, settings Settings) *State {
	if components == nil {
		components = []*Node{}
	}
	if len(past) > MaxHistory {
		past = past[len(past)-MaxHistory:]
	}
	return &State{
		Components: components,
		History:    History{Past: past, Present: components, Future: future},
		Settings:   settings,
	}
}

// Selected returns the selected node, or nil.
func (s *State) Selected() *Node {
	return Find(s.Components, s.SelectedID)
}

// clone returns a shallow copy of s. Trees are shared; the reducer replaces
// them wholesale rather than editing them.
func (s *State) clone() *State {
	c := *s
	return &c
}
