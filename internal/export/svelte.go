package export

import (
	"fmt"
	"html"
	"strings"
)

type svelteDialect struct{}

func (svelteDialect) classAttr(classes []string) string {
	return fmt.Sprintf("class=\"%s\"", strings.Join(classes, " "))
}

func (svelteDialect) styleAttr(decls []decl) string {
	return "style=\"" + templateEscaper.Replace(html.EscapeString(inlineCSS(decls))) + "\""
}

func (svelteDialect) flagAttr(name string) string { return name }

func (svelteDialect) comment(text string) string { return htmlComment(text) }

// renderSvelte emits component markup. The component has no script block,
// so imports and TypeScript do not change the output.
func renderSvelte(elems []*element, _ Options) string {
	return renderMarkup(svelteDialect{}, elems, 0)
}
