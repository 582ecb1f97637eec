// Package session owns one editing session: the builder state, the drop-zone
// resolver and the in-flight drag gesture. Every tree mutation re-registers
// the drop zones before Dispatch returns, so the resolver never answers from
// a stale tree.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/revolutionary-ui/revui/internal/analyzer"
	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/dnd"
	cerr "github.com/revolutionary-ui/revui/internal/errors"
	"github.com/revolutionary-ui/revui/internal/export"
	"github.com/revolutionary-ui/revui/internal/fixer"
	"github.com/revolutionary-ui/revui/internal/store"
)

// DefaultWidth is the canvas width assumed for estimated layout.
const DefaultWidth = 1200.0

var (
	ErrUnknownNode = errors.New("unknown component")
	ErrLocked      = errors.New("component is locked")
	ErrNotDragging = errors.New("no drag in progress")
	ErrAmbiguousID = errors.New("ambiguous component id")
)

// Options configures a session.
type Options struct {
	Name      string  // canvas name used by Save
	Width     float64 // estimated layout width; zero means DefaultWidth
	Proximity float64 // drop-zone attraction radius; zero means dnd.DefaultProximity
	Settings  *builder.Settings
	Logger    *slog.Logger
}

// Session is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	name     string
	state    *builder.State
	resolver *dnd.Resolver
	gesture  *dnd.Gesture
	measured dnd.Layout
	width    float64
	log      *slog.Logger
}

// New starts a session on an empty canvas.
func New(opts Options) *Session {
	settings := builder.DefaultSettings()
	if opts.Settings != nil {
		settings = *opts.Settings
	}
	return FromState(builder.New(settings), opts)
}

// FromState starts a session on an existing state.
func FromState(state *builder.State, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Name == "" {
		opts.Name = "main"
	}
	if opts.Settings != nil {
		state = builder.Reduce(state, builder.UpdateSettings{Settings: *opts.Settings})
	}

	r := dnd.NewResolver()
	if opts.Proximity > 0 {
		r.Proximity = opts.Proximity
	}
	s := &Session{
		name:     opts.Name,
		state:    state,
		resolver: r,
		gesture:  dnd.NewGesture(r),
		width:    opts.Width,
		log:      logger.With("component", "session", "canvas", opts.Name),
	}
	s.applySettingsLocked()
	s.registerLocked()
	return s
}

// Name returns the canvas name.
func (s *Session) Name() string { return s.name }

// State returns the current state. It must not be modified.
func (s *Session) State() *builder.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Components returns the current tree. It must not be modified.
func (s *Session) Components() []*builder.Node {
	return s.State().Components
}

// Resolve expands ref to a node id. ref may be a full id or a prefix that
// matches exactly one node.
func (s *Session) Resolve(ref string) (string, error) {
	nodes := s.Components()
	if builder.Find(nodes, ref) != nil {
		return ref, nil
	}
	var matches []string
	if ref != "" {
		for _, id := range builder.IDs(nodes) {
			if strings.HasPrefix(id, ref) {
				matches = append(matches, id)
			}
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrUnknownNode, ref)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("%w: %s matches %d components", ErrAmbiguousID, ref, len(matches))
}

// Dispatch applies a and reports whether the state changed.
func (s *Session) Dispatch(a builder.Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(a)
}

func (s *Session) dispatchLocked(a builder.Action) bool {
	prev := s.state
	next := builder.Reduce(prev, a)
	if next == prev {
		s.log.Debug("action ignored", "action", a.Kind())
		return false
	}
	s.state = next

	if _, ok := a.(builder.UpdateSettings); ok {
		s.applySettingsLocked()
	}
	if !sameTree(prev.Components, next.Components) {
		s.registerLocked()
		s.log.Debug("tree changed", "action", a.Kind(), "nodes", builder.Count(next.Components),
			"undo", len(next.History.Past), "redo", len(next.History.Future))
	}
	return true
}

// SetLayout installs rectangles measured by a renderer. Nodes missing from
// l keep their estimated bounds.
func (s *Session) SetLayout(l dnd.Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.measured = l
	s.registerLocked()
}

// Zones returns the currently registered drop zones.
func (s *Session) Zones() []builder.DropZone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.Zones()
}

// Layout returns the rectangles zones are computed from.
func (s *Session) Layout() dnd.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layoutLocked()
}

func (s *Session) layoutLocked() dnd.Layout {
	return dnd.Overlay{Measured: s.measured, Estimated: dnd.StackLayout(s.state.Components, s.width)}
}

func (s *Session) registerLocked() {
	zones := s.resolver.Register(s.state.Components, s.layoutLocked())
	s.state = builder.Reduce(s.state, builder.SetDropZones{Zones: zones})
}

func (s *Session) applySettingsLocked() {
	if s.state.Settings.SnapToGrid {
		s.resolver.GridSize = s.state.Settings.GridSize
	} else {
		s.resolver.GridSize = 0
	}
}

// ── Drag and drop ──

// BeginDrag picks up item. Existing nodes are looked up so the item carries
// their current type and position; locked nodes cannot be picked up.
func (s *Session) BeginDrag(item builder.DragItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !item.IsNew {
		n := builder.Find(s.state.Components, item.ID)
		if n == nil {
			return fmt.Errorf("%w: %s", ErrUnknownNode, item.ID)
		}
		if n.Locked {
			return fmt.Errorf("%w: %s", ErrLocked, item.ID)
		}
		parent, index, _ := builder.Locate(s.state.Components, item.ID)
		item.Type = n.Type
		item.SourceIndex = index
		item.ParentID = ""
		if parent != nil {
			item.ParentID = parent.ID
		}
	}

	s.gesture.Begin(item)
	s.dispatchLocked(builder.SetDragged{Item: &item})
	return nil
}

// DragTo moves the pointer to p and returns the zone the item would land
// in, if any.
func (s *Session) DragTo(p builder.Point) (builder.DropZone, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gesture.Move(s.resolver.Snap(p))
}

// Drop releases the item over the active zone and applies the resulting
// edit. It returns the action and whether the tree changed.
func (s *Session) Drop() (builder.Action, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gesture.Dragging() {
		return nil, false, ErrNotDragging
	}
	a, ok := s.gesture.End()
	s.dispatchLocked(builder.SetDragged{})
	if !ok {
		s.log.Debug("drop abandoned")
		return nil, false, nil
	}
	return a, s.dispatchLocked(a), nil
}

// CancelDrag abandons the current gesture.
func (s *Session) CancelDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gesture.Cancel()
	s.dispatchLocked(builder.SetDragged{})
}

// DropAt runs a whole gesture: pick up item, move to p, release.
func (s *Session) DropAt(item builder.DragItem, p builder.Point) (builder.Action, bool, error) {
	if err := s.BeginDrag(item); err != nil {
		return nil, false, err
	}
	if _, ok := s.DragTo(p); !ok {
		s.CancelDrag()
		return nil, false, nil
	}
	return s.Drop()
}

// ── Output ──

// Export renders the current tree.
func (s *Session) Export(opts export.Options) (string, error) {
	return export.Export(s.Components(), opts)
}

// Analyze validates the current tree.
func (s *Session) Analyze() *cerr.Diagnostics {
	return analyzer.Analyze(s.Components(), s.name)
}

// Repair fixes what it safely can in the current tree. The repaired tree
// replaces the canvas as one undoable import.
func (s *Session) Repair() *fixer.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := fixer.Repair(s.state.Components, s.name)
	if res.Changed() {
		s.dispatchLocked(builder.Import{Components: res.Components})
		s.log.Info("canvas repaired", "fixes", len(res.Fixes))
	}
	return res
}

// ── Persistence ──

// Save writes the canvas and its history to st.
func (s *Session) Save(ctx context.Context, st *store.Store) error {
	c := store.FromState(s.name, s.State())
	if err := st.Save(ctx, c); err != nil {
		return fmt.Errorf("saving %s: %w", s.name, err)
	}
	return nil
}

// Load opens the canvas opts.Name from st. A canvas that was never saved
// starts empty with opts.Settings; a saved one keeps its own settings.
func Load(ctx context.Context, st *store.Store, opts Options) (*Session, error) {
	if opts.Name == "" {
		opts.Name = "main"
	}
	c, err := st.Load(ctx, opts.Name)
	if errors.Is(err, store.ErrNotFound) {
		return New(opts), nil
	}
	if err != nil {
		return nil, err
	}
	opts.Settings = nil
	return FromState(c.State(), opts), nil
}

func sameTree(a, b []*builder.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
