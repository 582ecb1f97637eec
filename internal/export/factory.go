package export

import (
	"fmt"
	"strings"

	"github.com/revolutionary-ui/revui/internal/builder"
)

// FactoryPackage is the npm package the factory prologue imports from.
const FactoryPackage = "@revolutionary-ui/factory"

// Factory renders components as a declarative config literal fed to a
// UniversalFactory for opts.Framework. Props are resolved against registry
// defaults and emitted in sorted key order.
func Factory(components []*builder.Node, opts Options) string {
	var b strings.Builder

	if opts.IncludeImports {
		if opts.TypeScript {
			fmt.Fprintf(&b, "import { UniversalFactory, type ComponentConfig } from '%s';\n\n", FactoryPackage)
		} else {
			fmt.Fprintf(&b, "import { UniversalFactory } from '%s';\n\n", FactoryPackage)
		}
	}

	fmt.Fprintf(&b, "const factory = new UniversalFactory(%s);\n\n", jsString(string(opts.Framework)))

	if opts.TypeScript {
		b.WriteString("const config: ComponentConfig[] = [")
	} else {
		b.WriteString("const config = [")
	}
	if len(components) == 0 {
		b.WriteString("];\n")
	} else {
		b.WriteString("\n")
		for _, n := range components {
			writeConfig(&b, n, 1)
		}
		b.WriteString("];\n")
	}

	fmt.Fprintf(&b, "\nexport const %s = factory.create(config);\n", componentName(opts))
	b.WriteString("export default " + componentName(opts) + ";\n")
	return b.String()
}

func writeConfig(b *strings.Builder, n *builder.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	inner := indent + "  "

	fmt.Fprintf(b, "%s{\n", indent)
	fmt.Fprintf(b, "%stype: %s,\n", inner, jsString(n.Type))

	p := Resolve(n)
	if len(p) == 0 {
		fmt.Fprintf(b, "%sprops: {},\n", inner)
	} else {
		fmt.Fprintf(b, "%sprops: {\n", inner)
		for _, k := range p.Keys() {
			fmt.Fprintf(b, "%s  %s: %s,\n", inner, jsKey(k), jsValue(p[k]))
		}
		fmt.Fprintf(b, "%s},\n", inner)
	}

	if len(n.Children) == 0 {
		fmt.Fprintf(b, "%schildren: [],\n", inner)
	} else {
		fmt.Fprintf(b, "%schildren: [\n", inner)
		for _, c := range n.Children {
			writeConfig(b, c, depth+2)
		}
		fmt.Fprintf(b, "%s],\n", inner)
	}
	fmt.Fprintf(b, "%s},\n", indent)
}
