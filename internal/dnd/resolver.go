package dnd

import (
	"math"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/registry"
)

// DefaultProximity is the distance, in pixels, within which a zone center
// attracts the pointer.
const DefaultProximity = 50.0

// Resolver maps pointer positions to registered drop zones.
type Resolver struct {
	// Proximity is the attraction radius; zero means DefaultProximity.
	Proximity float64
	// GridSize snaps the pointer before resolution; zero disables snapping.
	GridSize float64

	zones []builder.DropZone
	tree  []*builder.Node
}

// NewResolver returns a resolver with the default proximity and no snapping.
func NewResolver() *Resolver {
	return &Resolver{Proximity: DefaultProximity}
}

// Register replaces the zones with those of the tree under layout and
// returns them.
func (r *Resolver) Register(components []*builder.Node, layout Layout) []builder.DropZone {
	r.SetZones(components, Zones(components, layout))
	return r.Zones()
}

// SetZones installs zones measured elsewhere. components is the tree they
// were measured from; CanDrop consults it for types and ancestry.
func (r *Resolver) SetZones(components []*builder.Node, zones []builder.DropZone) {
	r.tree = components
	r.zones = append([]builder.DropZone(nil), zones...)
}

// Zones returns the registered zones in registration order.
func (r *Resolver) Zones() []builder.DropZone {
	return append([]builder.DropZone(nil), r.zones...)
}

// Snap rounds p to the grid when snapping is enabled.
func (r *Resolver) Snap(p builder.Point) builder.Point {
	if r.GridSize <= 0 {
		return p
	}
	return builder.Point{
		X: math.Round(p.X/r.GridSize) * r.GridSize,
		Y: math.Round(p.Y/r.GridSize) * r.GridSize,
	}
}

// Nearest returns the zone whose center is closest to p and strictly within
// the proximity radius. On equal distance the earlier registered zone wins.
func (r *Resolver) Nearest(p builder.Point) (builder.DropZone, bool) {
	p = r.Snap(p)
	limit := r.Proximity
	if limit <= 0 {
		limit = DefaultProximity
	}

	best := -1
	bestDist := math.Inf(1)
	for i, z := range r.zones {
		c := z.Rect.Center()
		d := math.Hypot(p.X-c.X, p.Y-c.Y)
		if d < limit && d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return builder.DropZone{}, false
	}
	return r.zones[best], true
}

// CanDrop reports whether item may land in zone. A node cannot be dropped
// into itself or its own subtree, and the zone's parent must accept the
// item's type. The canvas root accepts anything.
func (r *Resolver) CanDrop(item builder.DragItem, zone builder.DropZone) bool {
	typ := item.Type
	if !item.IsNew && item.ID != "" {
		if zone.ParentID == item.ID {
			return false
		}
		node := builder.Find(r.tree, item.ID)
		if node == nil {
			return false
		}
		if builder.Contains(node, zone.ParentID) {
			return false
		}
		typ = node.Type
	}

	if zone.ParentID == RootID {
		return true
	}
	parent := builder.Find(r.tree, zone.ParentID)
	if parent == nil {
		return false
	}
	return registry.CanAcceptChild(parent.Type, typ)
}
