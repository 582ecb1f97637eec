package export

import (
	"strconv"
	"strings"

	"github.com/revolutionary-ui/revui/internal/props"
)

// decl is one CSS declaration.
type decl struct {
	prop  string // kebab-case CSS property
	value string
}

// cssProps maps style props to CSS properties, in output order.
var cssProps = []struct {
	prop string
	css  string
}{
	{"width", "width"},
	{"height", "height"},
	{"padding", "padding"},
	{"margin", "margin"},
	{"gap", "gap"},
	{"backgroundColor", "background-color"},
	{"color", "color"},
	{"fontSize", "font-size"},
	{"fontWeight", "font-weight"},
	{"textAlign", "text-align"},
	{"borderRadius", "border-radius"},
}

var flexAlign = map[string]string{
	"start":   "flex-start",
	"end":     "flex-end",
	"center":  "center",
	"stretch": "stretch",
	"between": "space-between",
	"around":  "space-around",
}

var shadows = map[string]string{
	"sm": "0 1px 2px rgba(0, 0, 0, 0.05)",
	"md": "0 4px 6px rgba(0, 0, 0, 0.1)",
	"lg": "0 10px 15px rgba(0, 0, 0, 0.1)",
	"xl": "0 20px 25px rgba(0, 0, 0, 0.1)",
}

// cssFor translates the resolved props of a node of typ into declarations:
// layout rules implied by the type first, then plain style props.
func cssFor(typ string, p props.Props) []decl {
	var out []decl
	add := func(prop, value string) {
		if value != "" {
			out = append(out, decl{prop, value})
		}
	}

	switch typ {
	case "grid":
		add("display", "grid")
		if n, ok := p.Get("columns").Float(); ok && n >= 1 {
			add("grid-template-columns", "repeat("+strconv.Itoa(int(n))+", minmax(0, 1fr))")
		}
	case "flex", "navbar":
		add("display", "flex")
		if p.Text("direction") == "column" {
			add("flex-direction", "column")
		}
		add("align-items", flexAlign[p.Text("align")])
		add("justify-content", flexAlign[p.Text("justify")])
		if p.Get("wrap").Truthy() {
			add("flex-wrap", "wrap")
		}
		if typ == "navbar" && p.Get("sticky").Truthy() {
			add("position", "sticky")
			add("top", "0")
		}
	case "form":
		add("display", "flex")
		add("flex-direction", "column")
	case "card":
		add("box-shadow", shadows[p.Text("shadow")])
	case "list":
		if p.Get("ordered").Truthy() && p.Has("marker") {
			add("list-style-type", p.Text("marker"))
		}
	case "divider":
		add("border", "none")
		add("border-top", "1px solid "+cssValue(p.Get("color")))
		add("margin", cssLength(p.Get("margin")))
		return out
	}

	for _, c := range cssProps {
		v, ok := p[c.prop]
		if !ok || v.IsZero() {
			continue
		}
		switch c.prop {
		case "fontWeight", "backgroundColor", "color", "textAlign":
			add(c.css, cssValue(v))
		default:
			add(c.css, cssLength(v))
		}
	}
	return out
}

// cssLength renders a length; bare numbers are pixels.
func cssLength(v props.Value) string {
	if v.Kind() == props.KindNumber {
		f, _ := v.Float()
		if f == 0 {
			return "0"
		}
		return v.Text() + "px"
	}
	return strings.TrimSpace(v.Text())
}

func cssValue(v props.Value) string {
	return strings.TrimSpace(v.Text())
}

// camel converts a kebab-case CSS property to its DOM style key.
func camel(prop string) string {
	parts := strings.Split(prop, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// inlineCSS renders declarations as a style attribute value.
func inlineCSS(decls []decl) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.prop + ": " + d.value
	}
	return strings.Join(parts, "; ")
}
