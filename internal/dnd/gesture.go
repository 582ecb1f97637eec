package dnd

import "github.com/revolutionary-ui/revui/internal/builder"

// Gesture tracks one drag from pick-up to drop.
type Gesture struct {
	resolver *Resolver
	item     *builder.DragItem
	active   *builder.DropZone
}

// NewGesture returns an idle gesture resolving against r.
func NewGesture(r *Resolver) *Gesture {
	return &Gesture{resolver: r}
}

// Begin picks up item.
func (g *Gesture) Begin(item builder.DragItem) {
	g.item = &item
	g.active = nil
}

// Dragging reports whether an item is picked up.
func (g *Gesture) Dragging() bool { return g.item != nil }

// Item returns the picked-up item, or nil.
func (g *Gesture) Item() *builder.DragItem { return g.item }

// Move updates the active zone for the pointer at p. It returns the zone
// and true when the item could be dropped there.
func (g *Gesture) Move(p builder.Point) (builder.DropZone, bool) {
	g.active = nil
	if g.item == nil {
		return builder.DropZone{}, false
	}
	zone, ok := g.resolver.Nearest(p)
	if !ok || !g.resolver.CanDrop(*g.item, zone) {
		return builder.DropZone{}, false
	}
	g.active = &zone
	return zone, true
}

// Active returns the zone the item would land in.
func (g *Gesture) Active() (builder.DropZone, bool) {
	if g.active == nil {
		return builder.DropZone{}, false
	}
	return *g.active, true
}

// Cancel abandons the drag.
func (g *Gesture) Cancel() {
	g.item = nil
	g.active = nil
}

// End drops the item and returns the edit to dispatch: Add for a palette
// item, Move for an existing node. Without an active zone the gesture is
// abandoned and no action is returned.
func (g *Gesture) End() (builder.Action, bool) {
	item, zone := g.item, g.active
	g.Cancel()
	if item == nil || zone == nil {
		return nil, false
	}
	if item.IsNew {
		return builder.Add{Type: item.Type, ParentID: zone.ParentID, Index: builder.At(zone.Index)}, true
	}
	return builder.Move{ID: item.ID, ParentID: zone.ParentID, Index: zone.Index}, true
}
