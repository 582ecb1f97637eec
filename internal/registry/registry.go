// Package registry is the static catalog of component types: their default
// properties, editable-property schema and child-acceptance rules.
package registry

import (
	"fmt"
	"strings"

	"github.com/revolutionary-ui/revui/internal/props"
)

// PropKind is the editor widget kind of a property.
type PropKind string

const (
	KindString  PropKind = "string"
	KindNumber  PropKind = "number"
	KindBoolean PropKind = "boolean"
	KindSelect  PropKind = "select"
	KindColor   PropKind = "color"
	KindSpacing PropKind = "spacing"
	KindIcon    PropKind = "icon"
	KindImage   PropKind = "image"
	KindAction  PropKind = "action"
)

// Condition makes a property visible only when a sibling prop equals a value.
type Condition struct {
	Prop   string
	Equals props.Value
}

// PropDescriptor describes one editable property of a component type.
type PropDescriptor struct {
	Name    string
	Label   string
	Kind    PropKind
	Default props.Value
	Min     *float64
	Max     *float64
	Options []string
	ShowIf  *Condition
}

// Definition describes a component type.
type Definition struct {
	Type            string
	Name            string
	Category        string
	Icon            string
	DefaultProps    props.Props
	Editable        []PropDescriptor
	AcceptsChildren bool
	ChildTypes      []string // empty means any type
	ParentTypes     []string // empty means any accepting parent
}

// Descriptor returns the editable-property descriptor named name, or nil.
func (d *Definition) Descriptor(name string) *PropDescriptor {
	for i := range d.Editable {
		if d.Editable[i].Name == name {
			return &d.Editable[i]
		}
	}
	return nil
}

// Visible evaluates desc's visibility condition against the node's props.
// Missing sibling props fall back to the descriptor default of that sibling.
func (d *Definition) Visible(desc *PropDescriptor, p props.Props) bool {
	if desc == nil || desc.ShowIf == nil {
		return true
	}
	v, ok := p[desc.ShowIf.Prop]
	if !ok {
		if sib := d.Descriptor(desc.ShowIf.Prop); sib != nil {
			v = sib.Default
		}
	}
	return v.Equal(desc.ShowIf.Equals)
}

// Get returns the definition for a component type, or nil if unknown.
func Get(typ string) *Definition {
	return definitions[strings.ToLower(strings.TrimSpace(typ))]
}

// Types returns every registered type in catalog order.
func Types() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Categories returns the distinct categories in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, typ := range order {
		c := definitions[typ].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// ListByCategory returns the definitions in category, in catalog order.
func ListByCategory(category string) []*Definition {
	var out []*Definition
	for _, typ := range order {
		d := definitions[typ]
		if strings.EqualFold(d.Category, category) {
			out = append(out, d)
		}
	}
	return out
}

// CanAcceptChild reports whether a node of parentType may hold a child of
// childType. Unknown types never accept and are never accepted.
func CanAcceptChild(parentType, childType string) bool {
	parent := Get(parentType)
	child := Get(childType)
	if parent == nil || child == nil || !parent.AcceptsChildren {
		return false
	}
	if len(parent.ChildTypes) > 0 && !contains(parent.ChildTypes, child.Type) {
		return false
	}
	if len(child.ParentTypes) > 0 && !contains(child.ParentTypes, parent.Type) {
		return false
	}
	return true
}

// CanBeRoot reports whether childType may sit at the top level of the canvas.
// Types restricted to specific parents cannot.
func CanBeRoot(childType string) bool {
	d := Get(childType)
	return d != nil && len(d.ParentTypes) == 0
}

// ValidateProp checks value against the edit schema of def. Props absent
// from the schema are accepted; the bag is open.
func ValidateProp(def *Definition, name string, value props.Value) error {
	if def == nil {
		return nil
	}
	desc := def.Descriptor(name)
	if desc == nil {
		return nil
	}
	switch desc.Kind {
	case KindNumber:
		n, ok := value.Float()
		if !ok {
			return fmt.Errorf("%s.%s: expected a number, got %s", def.Type, name, value.Kind())
		}
		if desc.Min != nil && n < *desc.Min {
			return fmt.Errorf("%s.%s: %v is below the minimum %v", def.Type, name, n, *desc.Min)
		}
		if desc.Max != nil && n > *desc.Max {
			return fmt.Errorf("%s.%s: %v is above the maximum %v", def.Type, name, n, *desc.Max)
		}
	case KindBoolean:
		if value.Kind() != props.KindBool {
			return fmt.Errorf("%s.%s: expected a boolean, got %s", def.Type, name, value.Kind())
		}
	case KindSelect:
		if len(desc.Options) > 0 && !contains(desc.Options, value.Text()) {
			return fmt.Errorf("%s.%s: %q is not one of %s", def.Type, name, value.Text(), strings.Join(desc.Options, ", "))
		}
	case KindColor, KindIcon, KindImage, KindAction:
		if value.Kind() == props.KindList {
			return fmt.Errorf("%s.%s: expected a single value, got a list", def.Type, name)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
