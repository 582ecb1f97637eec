// Package fixer repairs the problems the analyzer finds in a component tree,
// where a safe repair exists.
package fixer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/revolutionary-ui/revui/internal/analyzer"
	"github.com/revolutionary-ui/revui/internal/builder"
	cerr "github.com/revolutionary-ui/revui/internal/errors"
	"github.com/revolutionary-ui/revui/internal/props"
	"github.com/revolutionary-ui/revui/internal/registry"
)

// Fix describes one change made to the tree.
type Fix struct {
	Code        string `json:"code"` // diagnostic the fix resolves
	Path        string `json:"path"` // node path at the time of the fix
	Description string `json:"description"`
}

// Result holds the repaired tree, what was done to it and what is left.
type Result struct {
	Components []*builder.Node
	Fixes      []Fix
	Remaining  *cerr.Diagnostics
}

// Changed reports whether any fix was applied.
func (r *Result) Changed() bool { return len(r.Fixes) > 0 }

// maxRounds bounds the repair loop; each round fixes one finding.
const maxRounds = 500

const suggestionThreshold = 0.6

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// Repair returns a fixed copy of components. The input is not modified.
// Each round re-runs the analyzer and fixes the first finding that has a
// repair, so paths always refer to the current shape of the tree.
// components must not contain nil nodes.
func Repair(components []*builder.Node, file string) *Result {
	tree := builder.CloneTree(components)
	res := &Result{}

	for round := 0; round < maxRounds; round++ {
		ds := analyzer.Analyze(tree, file)
		fixed := false
		for _, d := range ds.All() {
			var fix *Fix
			tree, fix = repair(tree, d)
			if fix != nil {
				res.Fixes = append(res.Fixes, *fix)
				fixed = true
				break
			}
		}
		if !fixed {
			res.Remaining = ds
			break
		}
	}
	if res.Remaining == nil {
		res.Remaining = analyzer.Analyze(tree, file)
	}
	res.Components = tree
	return res
}

// repair applies the fix for d, if there is one.
func repair(tree []*builder.Node, d *cerr.Diagnostic) ([]*builder.Node, *Fix) {
	at, ok := locate(tree, d.Path)
	if !ok {
		return tree, nil
	}
	n := at.node
	fix := func(format string, args ...any) *Fix {
		return &Fix{Code: d.Code, Path: d.Path, Description: fmt.Sprintf(format, args...)}
	}

	switch d.Code {
	case analyzer.CodeDuplicateID, analyzer.CodeMissingID:
		old := n.ID
		n.ID = builder.NewID()
		if old == "" {
			return tree, fix("Gave %s an id", d.Path)
		}
		return tree, fix("Gave %s a fresh id in place of duplicate %q", d.Path, old)

	case analyzer.CodeUnknownType:
		to := cerr.FindClosest(n.Type, registry.Types(), suggestionThreshold)
		if to == "" {
			return tree, nil
		}
		from := n.Type
		n.Type = to
		return tree, fix("Changed type of %s from %q to %q", d.Path, from, to)

	case analyzer.CodeUnknownProp:
		def := registry.Get(n.Type)
		if def == nil || d.Prop == "" {
			return tree, nil
		}
		var names []string
		for _, e := range def.Editable {
			names = append(names, e.Name)
		}
		to := cerr.FindClosest(d.Prop, names, suggestionThreshold)
		if to == "" {
			return tree, nil
		}
		value := n.Props[d.Prop]
		delete(n.Props, d.Prop)
		if _, taken := n.Props[to]; taken {
			return tree, fix("Removed %s.%s (%s is already set)", d.Path, d.Prop, to)
		}
		n.Props[to] = value
		return tree, fix("Renamed %s.%s to %s", d.Path, d.Prop, to)

	case analyzer.CodeInvalidValue:
		def := registry.Get(n.Type)
		if def == nil || d.Prop == "" {
			return tree, nil
		}
		desc := def.Descriptor(d.Prop)
		if desc == nil {
			return tree, nil
		}
		if v, ok := clamp(desc, n.Props[d.Prop]); ok {
			n.Props[d.Prop] = v
			return tree, fix("Clamped %s.%s to %s", d.Path, d.Prop, v.Text())
		}
		if desc.Default.IsZero() {
			delete(n.Props, d.Prop)
			return tree, fix("Removed invalid %s.%s", d.Path, d.Prop)
		}
		n.Props[d.Prop] = desc.Default
		return tree, fix("Reset %s.%s to %s", d.Path, d.Prop, desc.Default.Text())

	case analyzer.CodeInactiveProp:
		if d.Prop == "" {
			return tree, nil
		}
		delete(n.Props, d.Prop)
		return tree, fix("Removed %s.%s, which has no effect", d.Path, d.Prop)

	case analyzer.CodeRestrictedTop:
		def := registry.Get(n.Type)
		if def == nil || len(def.ParentTypes) == 0 {
			return tree, nil
		}
		wrapper := newNode(def.ParentTypes[0])
		if wrapper == nil {
			return tree, nil
		}
		wrapper.Children = []*builder.Node{n}
		tree[at.index] = wrapper
		return tree, fix("Wrapped %s %s in a new %s", n.Type, d.Path, wrapper.Type)

	case analyzer.CodeRefusedChild:
		// Hoist the child out, right after its parent.
		parentAt, ok := locate(tree, parentPath(d.Path))
		if !ok {
			return tree, nil
		}
		parentAt.node.Children = remove(parentAt.node.Children, at.index)
		tree = insertAfter(tree, parentAt, n)
		return tree, fix("Moved %s out of %s, which cannot contain it", n.Type, parentAt.node.Type)
	}
	return tree, nil
}

// clamp pulls an out-of-range number back into the descriptor's bounds.
func clamp(desc *registry.PropDescriptor, v props.Value) (props.Value, bool) {
	if desc.Kind != registry.KindNumber {
		return v, false
	}
	f, ok := v.Float()
	if !ok {
		return v, false
	}
	switch {
	case desc.Min != nil && f < *desc.Min:
		return props.Number(*desc.Min), true
	case desc.Max != nil && f > *desc.Max:
		return props.Number(*desc.Max), true
	}
	return v, false
}

func newNode(typ string) *builder.Node {
	def := registry.Get(typ)
	if def == nil {
		return nil
	}
	return &builder.Node{
		ID:       builder.NewID(),
		Type:     def.Type,
		Name:     def.Name,
		Props:    def.DefaultProps.Clone(),
		Children: []*builder.Node{},
	}
}

// ── Paths ──

// slot is a node and where it sits.
type slot struct {
	parent *builder.Node // nil at the canvas root
	index  int
	node   *builder.Node
}

// locate resolves a path like "$[0].children[2]".
func locate(tree []*builder.Node, path string) (slot, bool) {
	matches := indexPattern.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return slot{}, false
	}
	var at slot
	list := tree
	for _, m := range matches {
		i, err := strconv.Atoi(m[1])
		if err != nil || i >= len(list) || list[i] == nil {
			return slot{}, false
		}
		at = slot{parent: at.node, index: i, node: list[i]}
		list = at.node.Children
	}
	return at, true
}

func parentPath(path string) string {
	if i := strings.LastIndex(path, ".children["); i >= 0 {
		return path[:i]
	}
	return ""
}

func remove(list []*builder.Node, i int) []*builder.Node {
	out := make([]*builder.Node, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// insertAfter places n right after the node at s, in the same list.
func insertAfter(tree []*builder.Node, s slot, n *builder.Node) []*builder.Node {
	list := tree
	if s.parent != nil {
		list = s.parent.Children
	}
	out := make([]*builder.Node, 0, len(list)+1)
	out = append(out, list[:s.index+1]...)
	out = append(out, n)
	out = append(out, list[s.index+1:]...)
	if s.parent != nil {
		s.parent.Children = out
		return tree
	}
	return out
}
