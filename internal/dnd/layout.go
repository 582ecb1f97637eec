// Package dnd turns pointer positions into tree edits: it registers drop
// zones from a laid-out tree, resolves the nearest one during a drag and
// emits the reducer action when the gesture ends.
package dnd

import (
	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/registry"
)

// RootID asks a Layout for the bounds of the canvas itself.
const RootID = ""

// Layout supplies the rendered rectangle of a node.
type Layout interface {
	Bounds(id string) (builder.Rect, bool)
}

// MapLayout is a Layout backed by a map of measured rectangles.
type MapLayout map[string]builder.Rect

// Bounds implements Layout.
func (m MapLayout) Bounds(id string) (builder.Rect, bool) {
	r, ok := m[id]
	return r, ok
}

// Overlay prefers measured rectangles and falls back to estimates for nodes
// the renderer has not measured yet (a node added since the last frame).
type Overlay struct {
	Measured  Layout
	Estimated Layout
}

// Bounds implements Layout.
func (o Overlay) Bounds(id string) (builder.Rect, bool) {
	if o.Measured != nil {
		if r, ok := o.Measured.Bounds(id); ok {
			return r, true
		}
	}
	if o.Estimated != nil {
		return o.Estimated.Bounds(id)
	}
	return builder.Rect{}, false
}

// Metrics of the estimated block-flow layout.
const (
	RowHeight   = 40.0
	EmptyHeight = 80.0 // an empty container leaves room to drop into
	Inset       = 16.0
	Gap         = 8.0
)

// StackLayout estimates a block-flow layout of the tree: every node spans
// its parent's inner width and siblings stack top to bottom. It stands in
// for a renderer when nothing is on screen (CLI, MCP).
func StackLayout(components []*builder.Node, width float64) MapLayout {
	m := make(MapLayout)
	bottom := stack(m, components, 0, 0, width)
	height := bottom
	if height < EmptyHeight {
		height = EmptyHeight
	}
	m[RootID] = builder.Rect{X: 0, Y: 0, Width: width, Height: height}
	return m
}

// stack lays nodes out from y and returns the bottom edge of the last one.
func stack(m MapLayout, nodes []*builder.Node, x, y, width float64) float64 {
	cursor := y
	for i, n := range nodes {
		if i > 0 {
			cursor += Gap
		}
		h := RowHeight
		if def := registry.Get(n.Type); def != nil && def.AcceptsChildren {
			if len(n.Children) == 0 {
				h = EmptyHeight
			} else {
				inner := stack(m, n.Children, x+Inset, cursor+Inset, width-2*Inset)
				h = inner - cursor + Inset
			}
		}
		m[n.ID] = builder.Rect{X: x, Y: cursor, Width: width, Height: h}
		cursor += h
	}
	return cursor
}
