package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// dialect spells the framework-specific parts of a template.
type dialect interface {
	classAttr(classes []string) string
	styleAttr(decls []decl) string
	flagAttr(name string) string
	comment(text string) string
}

var strictPolicy = bluemonday.StrictPolicy()

// Braces open interpolation in every target template language. Backticks
// and backslashes are significant inside Angular's inline template literal.
var templateEscaper = strings.NewReplacer("{", "&#123;", "}", "&#125;", "`", "&#96;", "\\", "&#92;")

// escapeText strips markup from user text and escapes what remains.
func escapeText(s string) string {
	return templateEscaper.Replace(strictPolicy.Sanitize(s))
}

func escapeAttr(s string) string {
	return templateEscaper.Replace(html.EscapeString(s))
}

// writeMarkup renders el at depth, two spaces per level.
func writeMarkup(b *strings.Builder, d dialect, el *element, depth int) {
	indent := strings.Repeat("  ", depth)
	if el.comment != "" {
		fmt.Fprintf(b, "%s%s\n", indent, d.comment(el.comment))
	}

	open := openTag(d, el)
	if el.void {
		fmt.Fprintf(b, "%s<%s />\n", indent, open)
		return
	}

	text := escapeText(el.text)
	if len(el.children) == 0 {
		fmt.Fprintf(b, "%s<%s>%s</%s>\n", indent, open, text, el.tag)
		return
	}

	fmt.Fprintf(b, "%s<%s>\n", indent, open)
	inner := strings.Repeat("  ", depth+1)
	if text != "" && !el.textLast {
		fmt.Fprintf(b, "%s%s\n", inner, text)
	}
	for _, c := range el.children {
		writeMarkup(b, d, c, depth+1)
	}
	if text != "" && el.textLast {
		fmt.Fprintf(b, "%s%s\n", inner, text)
	}
	fmt.Fprintf(b, "%s</%s>\n", indent, el.tag)
}

// openTag returns the tag name and attributes, without angle brackets.
func openTag(d dialect, el *element) string {
	parts := []string{el.tag}
	for _, a := range el.attrs {
		parts = append(parts, fmt.Sprintf("%s=\"%s\"", a.name, escapeAttr(a.value)))
	}
	for _, f := range el.flags {
		parts = append(parts, d.flagAttr(f))
	}
	if len(el.classes) > 0 {
		parts = append(parts, d.classAttr(el.classes))
	}
	if len(el.style) > 0 {
		parts = append(parts, d.styleAttr(el.style))
	}
	return strings.Join(parts, " ")
}

// styleObject renders decls as a JS object literal with the given key style.
func styleObject(decls []decl, key func(string) string) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = key(d.prop) + ": " + jsString(d.value)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// bound escapes a JS expression for use inside a double-quoted attribute.
func bound(expr string) string {
	return strings.ReplaceAll(expr, `"`, "&quot;")
}

func renderMarkup(d dialect, elems []*element, depth int) string {
	var b strings.Builder
	for _, el := range elems {
		writeMarkup(&b, d, el, depth)
	}
	return b.String()
}
