package export

import (
	"fmt"
	"strings"
)

type reactDialect struct{}

func (reactDialect) classAttr(classes []string) string {
	return fmt.Sprintf("className=\"%s\"", strings.Join(classes, " "))
}

func (reactDialect) styleAttr(decls []decl) string {
	return "style={" + styleObject(decls, camel) + "}"
}

func (reactDialect) flagAttr(name string) string {
	if name == "checked" {
		return "defaultChecked"
	}
	return name
}

func (reactDialect) comment(text string) string {
	return "{/* " + strings.ReplaceAll(text, "*/", "* /") + " */}"
}

// renderReact emits a JSX function component.
func renderReact(elems []*element, opts Options) string {
	var b strings.Builder
	name := componentName(opts)

	if opts.IncludeImports {
		b.WriteString("import React from 'react';\n\n")
	}

	if opts.TypeScript {
		fmt.Fprintf(&b, "export default function %s(): JSX.Element {\n", name)
	} else {
		fmt.Fprintf(&b, "export default function %s() {\n", name)
	}
	b.WriteString("  return (\n")
	if len(elems) == 1 && elems[0].comment == "" {
		b.WriteString(renderMarkup(reactDialect{}, elems, 2))
	} else {
		b.WriteString("    <>\n")
		b.WriteString(renderMarkup(reactDialect{}, elems, 3))
		b.WriteString("    </>\n")
	}
	b.WriteString("  );\n")
	b.WriteString("}\n")
	return b.String()
}
