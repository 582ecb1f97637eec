// Package builder holds the visual builder's component tree and the reducer
// that edits it.
//
// Trees handed out by this package are treated as immutable: the reducer
// never edits a node reachable from a previous state, it clones first. Callers
// must follow the same rule.
package builder

import (
	"github.com/google/uuid"

	"github.com/revolutionary-ui/revui/internal/props"
)

// Point is a position on the canvas, in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair, in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is one component in the builder tree.
type Node struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Name     string      `json:"name"`
	Props    props.Props `json:"props"`
	Children []*Node     `json:"children"`

	// Presentation state, ignored by the exporter.
	Position *Point `json:"position,omitempty"`
	Size     *Size  `json:"size,omitempty"`
	Locked   bool   `json:"locked,omitempty"`
	Visible  *bool  `json:"visible,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

// NewID returns a fresh node id.
func NewID() string {
	return uuid.NewString()
}

// IsVisible reports whether the node is shown on the canvas. Nodes are
// visible unless explicitly hidden.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Clone deep-copies n, keeping ids.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Props = n.Props.Clone()
	if c.Props == nil {
		c.Props = props.Props{}
	}
	if n.Position != nil {
		p := *n.Position
		c.Position = &p
	}
	if n.Size != nil {
		s := *n.Size
		c.Size = &s
	}
	if n.Visible != nil {
		v := *n.Visible
		c.Visible = &v
	}
	c.Children = CloneTree(n.Children)
	return &c
}

// CloneFresh deep-copies n assigning new ids throughout the copy.
func (n *Node) CloneFresh() *Node {
	c := n.Clone()
	Walk([]*Node{c}, func(node, _ *Node, _ int) bool {
		node.ID = NewID()
		return true
	})
	return c
}

// CloneTree deep-copies a sibling list. The result is never nil.
func CloneTree(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Clone())
	}
	return out
}

// Walk visits every node depth-first in rendering order. fn receives the node,
// its parent (nil at root) and its index among its siblings; returning false
// skips the node's children.
func Walk(nodes []*Node, fn func(node, parent *Node, index int) bool) {
	walk(nodes, nil, fn)
}

func walk(nodes []*Node, parent *Node, fn func(node, parent *Node, index int) bool) {
	for i, n := range nodes {
		if fn(n, parent, i) {
			walk(n.Children, n, fn)
		}
	}
}

// Find returns the node with id, or nil.
func Find(nodes []*Node, id string) *Node {
	if id == "" {
		return nil
	}
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
		if found := Find(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Locate returns the parent of the node with id (nil for root-level nodes),
// its index among its siblings, and whether it was found.
func Locate(nodes []*Node, id string) (parent *Node, index int, ok bool) {
	for i, n := range nodes {
		if n.ID == id {
			return nil, i, true
		}
	}
	found := false
	Walk(nodes, func(n, _ *Node, _ int) bool {
		if found {
			return false
		}
		for i, c := range n.Children {
			if c.ID == id {
				parent, index, found = n, i, true
				return false
			}
		}
		return true
	})
	return parent, index, found
}

// Contains reports whether id is n itself or one of its descendants.
func Contains(n *Node, id string) bool {
	if n == nil || id == "" {
		return false
	}
	return n.ID == id || Find(n.Children, id) != nil
}

// Count returns the number of nodes in the tree.
func Count(nodes []*Node) int {
	total := 0
	Walk(nodes, func(*Node, *Node, int) bool {
		total++
		return true
	})
	return total
}

// IDs returns every id in the tree, in rendering order.
func IDs(nodes []*Node) []string {
	var out []string
	Walk(nodes, func(n, _ *Node, _ int) bool {
		out = append(out, n.ID)
		return true
	})
	return out
}

// Equal reports whether two trees have the same structure: types, names,
// props and children in the same order. Ids and presentation state are ignored.
func Equal(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type != b[i].Type || a[i].Name != b[i].Name {
			return false
		}
		if !a[i].Props.Equal(b[i].Props) {
			return false
		}
		if !Equal(a[i].Children, b[i].Children) {
			return false
		}
	}
	return true
}
