package export

import (
	"fmt"
	"strings"
)

type vueDialect struct{}

func (vueDialect) classAttr(classes []string) string {
	return fmt.Sprintf("class=\"%s\"", strings.Join(classes, " "))
}

func (vueDialect) styleAttr(decls []decl) string {
	return ":style=\"" + bound(styleObject(decls, camel)) + "\""
}

func (vueDialect) flagAttr(name string) string { return name }

func (vueDialect) comment(text string) string { return htmlComment(text) }

// htmlComment renders an HTML comment, keeping "--" out of the body.
func htmlComment(text string) string {
	return "<!-- " + strings.ReplaceAll(text, "--", "- -") + " -->"
}

// renderVue emits a single-file component.
func renderVue(elems []*element, opts Options) string {
	var b strings.Builder
	name := componentName(opts)

	if opts.TypeScript {
		b.WriteString("<script lang=\"ts\">\n")
	} else {
		b.WriteString("<script>\n")
	}
	if opts.IncludeImports {
		b.WriteString("import { defineComponent } from 'vue';\n\n")
		fmt.Fprintf(&b, "export default defineComponent({\n  name: '%s',\n});\n", name)
	} else {
		fmt.Fprintf(&b, "export default {\n  name: '%s',\n};\n", name)
	}
	b.WriteString("</script>\n\n")

	b.WriteString("<template>\n")
	b.WriteString(renderMarkup(vueDialect{}, elems, 1))
	b.WriteString("</template>\n")
	return b.String()
}
