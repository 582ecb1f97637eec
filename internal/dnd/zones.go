package dnd

import (
	"fmt"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/registry"
)

// ZoneHeight is the thickness of an insertion strip drawn on a sibling edge.
const ZoneHeight = 8.0

// ZoneID returns the id of the zone at index inside parentID.
func ZoneID(parentID string, index int) string {
	if parentID == RootID {
		return fmt.Sprintf("root:%d", index)
	}
	return fmt.Sprintf("%s:%d", parentID, index)
}

// Zones walks the tree in rendering order and returns every drop zone: one
// before each node, one after the last child of every container (or one
// covering an empty container), and a trailing zone at the canvas root.
// Nodes the layout cannot place get no zone.
func Zones(components []*builder.Node, layout Layout) []builder.DropZone {
	var zones []builder.DropZone
	zones = appendZones(zones, components, RootID, layout)
	return zones
}

func appendZones(zones []builder.DropZone, children []*builder.Node, parentID string, layout Layout) []builder.DropZone {
	for i, child := range children {
		if r, ok := layout.Bounds(child.ID); ok {
			zones = append(zones, builder.DropZone{
				ID:       ZoneID(parentID, i),
				ParentID: parentID,
				Index:    i,
				Rect:     edge(r, r.Y),
			})
		}
		if def := registry.Get(child.Type); def != nil && def.AcceptsChildren {
			zones = appendZones(zones, child.Children, child.ID, layout)
		}
	}

	if len(children) == 0 {
		if r, ok := layout.Bounds(parentID); ok {
			zones = append(zones, builder.DropZone{
				ID:       ZoneID(parentID, 0),
				ParentID: parentID,
				Index:    0,
				Rect:     r,
			})
		}
		return zones
	}

	last := children[len(children)-1]
	if r, ok := layout.Bounds(last.ID); ok {
		zones = append(zones, builder.DropZone{
			ID:       ZoneID(parentID, len(children)),
			ParentID: parentID,
			Index:    len(children),
			Rect:     edge(r, r.Y+r.Height),
		})
	}
	return zones
}

// edge returns a strip across r centered on the horizontal line at y.
func edge(r builder.Rect, y float64) builder.Rect {
	return builder.Rect{X: r.X, Y: y - ZoneHeight/2, Width: r.Width, Height: ZoneHeight}
}
