package export

import (
	"fmt"
	"strings"
)

type angularDialect struct{}

func (angularDialect) classAttr(classes []string) string {
	return fmt.Sprintf("class=\"%s\"", strings.Join(classes, " "))
}

func (angularDialect) styleAttr(decls []decl) string {
	return "[ngStyle]=\"" + bound(styleObject(decls, jsString)) + "\""
}

func (angularDialect) flagAttr(name string) string { return name }

func (angularDialect) comment(text string) string { return htmlComment(text) }

// renderAngular emits a standalone component with an inline template.
func renderAngular(elems []*element, opts Options) string {
	var b strings.Builder
	name := componentName(opts)
	usesStyle := hasStyle(elems)

	if opts.IncludeImports {
		b.WriteString("import { Component } from '@angular/core';\n")
		if usesStyle {
			b.WriteString("import { NgStyle } from '@angular/common';\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("@Component({\n")
	fmt.Fprintf(&b, "  selector: 'app-%s',\n", toKebabCase(name))
	b.WriteString("  standalone: true,\n")
	if usesStyle && opts.IncludeImports {
		b.WriteString("  imports: [NgStyle],\n")
	}
	b.WriteString("  template: `\n")
	b.WriteString(renderMarkup(angularDialect{}, elems, 2))
	b.WriteString("  `,\n")
	b.WriteString("})\n")
	fmt.Fprintf(&b, "export class %s {}\n", name)
	return b.String()
}

func hasStyle(elems []*element) bool {
	for _, el := range elems {
		if len(el.style) > 0 || hasStyle(el.children) {
			return true
		}
	}
	return false
}
