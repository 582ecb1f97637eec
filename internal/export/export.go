// Package export serializes a builder tree to JSON, to a declarative factory
// config, or to framework-native component code.
//
// Every exporter is deterministic: the same tree and options always yield
// byte-identical output.
package export

import (
	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/props"
	"github.com/revolutionary-ui/revui/internal/registry"
)

// Export serializes components according to opts. The only errors are
// configuration errors (*UnsupportedError) and JSON encoding failures.
func Export(components []*builder.Node, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	var out string
	switch opts.Format {
	case FormatJSON:
		return JSON(components)
	case FormatFactory:
		out = Factory(components, opts)
	case FormatCode:
		out = Code(components, opts)
	}
	if opts.Prettier {
		out = Tidy(out)
	}
	return out, nil
}

// Code renders components as a component for opts.Framework. Options are
// assumed valid; an unknown framework falls back to React.
func Code(components []*builder.Node, opts Options) string {
	elems := make([]*element, 0, len(components))
	for _, n := range components {
		elems = append(elems, build(n, opts.Styling))
	}
	switch opts.Framework {
	case Vue:
		return renderVue(elems, opts)
	case Angular:
		return renderAngular(elems, opts)
	case Svelte:
		return renderSvelte(elems, opts)
	default:
		return renderReact(elems, opts)
	}
}

// Resolve returns n's props overlaid on its registry defaults. Unknown types
// keep their props as stored.
func Resolve(n *builder.Node) props.Props {
	def := registry.Get(n.Type)
	if def == nil {
		return n.Props.Clone()
	}
	return def.DefaultProps.Merge(n.Props)
}
