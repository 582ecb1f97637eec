// Package analyzer validates a component tree against the registry. The
// reducer keeps its own trees valid; this catches problems in trees that
// arrive from outside (imports, hand-edited JSON, a stale database).
package analyzer

import (
	"fmt"
	"strings"

	"github.com/revolutionary-ui/revui/internal/builder"
	cerr "github.com/revolutionary-ui/revui/internal/errors"
	"github.com/revolutionary-ui/revui/internal/registry"
)

const suggestionThreshold = 0.6

// Diagnostic codes.
const (
	CodeDuplicateID   = "E101"
	CodeRefusedChild  = "E102"
	CodeMissingID     = "E103"
	CodeMissingType   = "E104"
	CodeUnknownType   = "W101"
	CodeUnknownProp   = "W102"
	CodeInvalidValue  = "W103"
	CodeRestrictedTop = "W104"
	CodeInactiveProp  = "W105"
)

// Analyze checks every node of components and returns the findings. file
// scopes the diagnostics ("" for an in-memory canvas).
func Analyze(components []*builder.Node, file string) *cerr.Diagnostics {
	errs := cerr.New(file)
	seen := make(map[string]string) // id → path of first use
	walk(errs, components, nil, "$", seen)
	return errs
}

func walk(errs *cerr.Diagnostics, nodes []*builder.Node, parent *builder.Node, path string, seen map[string]string) {
	for i, n := range nodes {
		if n == nil {
			errs.AddError(CodeMissingType, cerr.Location{Path: fmt.Sprintf("%s[%d]", path, i)}, "Null node")
			continue
		}
		at := cerr.Location{Path: fmt.Sprintf("%s[%d]", path, i), NodeID: n.ID}

		checkID(errs, n, at, seen)
		def := checkType(errs, n, at)
		checkPlacement(errs, n, parent, at)
		if def != nil {
			checkProps(errs, n, def, at)
		}

		walk(errs, n.Children, n, at.Path+".children", seen)
	}
}

// ── Identity ──

func checkID(errs *cerr.Diagnostics, n *builder.Node, at cerr.Location, seen map[string]string) {
	if n.ID == "" {
		errs.AddError(CodeMissingID, at, "Node has no id")
		return
	}
	if first, ok := seen[n.ID]; ok {
		errs.AddError(CodeDuplicateID, at, fmt.Sprintf("Duplicate id %q (first used at %s)", n.ID, first))
		return
	}
	seen[n.ID] = at.Path
}

// ── Types ──

func checkType(errs *cerr.Diagnostics, n *builder.Node, at cerr.Location) *registry.Definition {
	if strings.TrimSpace(n.Type) == "" {
		errs.AddError(CodeMissingType, at, "Node has no type")
		return nil
	}
	def := registry.Get(n.Type)
	if def == nil {
		msg := fmt.Sprintf("Unknown component type %q; it will export as a generic container", n.Type)
		if s := cerr.DidYouMean(n.Type, registry.Types(), suggestionThreshold); s != "" {
			errs.AddWarningWithSuggestion(CodeUnknownType, at, msg, s)
		} else {
			errs.AddWarning(CodeUnknownType, at, msg)
		}
	}
	return def
}

// ── Placement ──

func checkPlacement(errs *cerr.Diagnostics, n, parent *builder.Node, at cerr.Location) {
	if registry.Get(n.Type) == nil {
		return
	}
	if parent == nil {
		if !registry.CanBeRoot(n.Type) {
			def := registry.Get(n.Type)
			errs.AddWarning(CodeRestrictedTop, at,
				fmt.Sprintf("%q belongs inside %s, not at the top level", n.Type, strings.Join(def.ParentTypes, " or ")))
		}
		return
	}
	if registry.Get(parent.Type) == nil {
		return
	}
	if !registry.CanAcceptChild(parent.Type, n.Type) {
		errs.AddError(CodeRefusedChild, at, fmt.Sprintf("%q cannot contain %q", parent.Type, n.Type))
	}
}

// ── Props ──

func checkProps(errs *cerr.Diagnostics, n *builder.Node, def *registry.Definition, at cerr.Location) {
	known := make([]string, 0, len(def.Editable))
	for _, d := range def.Editable {
		known = append(known, d.Name)
	}

	for _, key := range n.Props.Keys() {
		value := n.Props[key]
		desc := def.Descriptor(key)
		if desc == nil {
			if _, isDefault := def.DefaultProps[key]; isDefault {
				continue
			}
			msg := fmt.Sprintf("%s has no property %q", def.Name, key)
			if s := cerr.DidYouMean(key, known, suggestionThreshold); s != "" {
				errs.AddWarningWithSuggestion(CodeUnknownProp, at.WithProp(key), msg, s)
			} else {
				errs.AddWarning(CodeUnknownProp, at.WithProp(key), msg)
			}
			continue
		}
		if err := registry.ValidateProp(def, key, value); err != nil {
			errs.AddWarning(CodeInvalidValue, at.WithProp(key), err.Error())
			continue
		}
		if !def.Visible(desc, n.Props) {
			errs.AddWarning(CodeInactiveProp, at.WithProp(key),
				fmt.Sprintf("%s.%s has no effect unless %s is %s", def.Type, key, desc.ShowIf.Prop, desc.ShowIf.Equals.Text()))
		}
	}
}
