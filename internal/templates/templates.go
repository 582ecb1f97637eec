// Package templates is the library of pre-built component trees users can
// drop onto the canvas in one step.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/props"
	"github.com/revolutionary-ui/revui/internal/registry"
)

//go:embed library/*.yaml
var files embed.FS

// Template is a named, reusable tree.
type Template struct {
	ID          string
	Name        string
	Category    string
	Description string
	Components  []*builder.Node
}

// file is the YAML shape of a template.
type file struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Category    string     `yaml:"category"`
	Description string     `yaml:"description"`
	Components  []yamlNode `yaml:"components"`
}

type yamlNode struct {
	Type     string         `yaml:"type"`
	Name     string         `yaml:"name"`
	Props    map[string]any `yaml:"props"`
	Children []yamlNode     `yaml:"children"`
}

var library = mustLoad(files)

// All returns every template, ordered by id.
func All() []*Template {
	return append([]*Template(nil), library...)
}

// Get returns the template with id, or nil.
func Get(id string) *Template {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range library {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Instantiate returns a copy of the template's tree with fresh ids.
func Instantiate(id string) ([]*builder.Node, error) {
	t := Get(id)
	if t == nil {
		return nil, fmt.Errorf("unknown template %q", id)
	}
	out := make([]*builder.Node, 0, len(t.Components))
	for _, n := range t.Components {
		out = append(out, n.CloneFresh())
	}
	return out, nil
}

// Categories returns the distinct template categories, sorted.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range library {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	sort.Strings(out)
	return out
}

// ListByCategory returns the templates in category, ordered by id.
func ListByCategory(category string) []*Template {
	var out []*Template
	for _, t := range library {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

func mustLoad(fsys fs.FS) []*Template {
	list, err := Load(fsys)
	if err != nil {
		panic(fmt.Sprintf("templates: %v", err))
	}
	return list
}

// Load parses every library/*.yaml file in fsys. Each tree is checked
// against the registry: unknown types and refused children are errors.
func Load(fsys fs.FS) ([]*Template, error) {
	names, err := fs.Glob(fsys, "library/*.yaml")
	if err != nil {
		return nil, err
	}

	var out []*Template
	seen := make(map[string]string)
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		t, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		if prev, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("%s: duplicate template id %q (also in %s)", path.Base(name), t.ID, prev)
		}
		seen[t.ID] = path.Base(name)
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func parse(data []byte) (*Template, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	if f.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	if len(f.Components) == 0 {
		return nil, fmt.Errorf("template %q has no components", f.ID)
	}

	nodes, err := convert(f.Components, "")
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", f.ID, err)
	}
	return &Template{
		ID:          f.ID,
		Name:        f.Name,
		Category:    f.Category,
		Description: f.Description,
		Components:  nodes,
	}, nil
}

func convert(in []yamlNode, parentType string) ([]*builder.Node, error) {
	out := make([]*builder.Node, 0, len(in))
	for _, y := range in {
		def := registry.Get(y.Type)
		if def == nil {
			return nil, fmt.Errorf("unknown component type %q", y.Type)
		}
		if parentType != "" && !registry.CanAcceptChild(parentType, def.Type) {
			return nil, fmt.Errorf("%s cannot contain %s", parentType, def.Type)
		}
		p, err := props.FromMap(y.Props)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.Type, err)
		}
		children, err := convert(y.Children, def.Type)
		if err != nil {
			return nil, err
		}
		name := y.Name
		if name == "" {
			name = def.Name
		}
		out = append(out, &builder.Node{
			ID:       builder.NewID(),
			Type:     def.Type,
			Name:     name,
			Props:    def.DefaultProps.Merge(p),
			Children: children,
		})
	}
	return out, nil
}
