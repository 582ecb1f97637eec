package export

import (
	"strconv"
	"strings"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/props"
	"github.com/revolutionary-ui/revui/internal/registry"
)

// element is the framework-neutral markup for one node. Dialects decide how
// classes, styles and comments are spelled.
type element struct {
	tag      string
	attrs    []attr
	flags    []string // boolean attributes
	classes  []string
	style    []decl
	comment  string // emitted before the element, e.g. for unknown types
	text     string // raw text content, escaped at render time
	textLast bool   // render text after children (checkbox labels)
	void     bool
	children []*element
}

type attr struct {
	name  string
	value string
}

var voidTags = map[string]bool{"img": true, "input": true, "hr": true, "br": true}

// build converts n and its subtree into elements.
func build(n *builder.Node, styling Styling) *element {
	p := Resolve(n)
	def := registry.Get(n.Type)
	typ := strings.ToLower(strings.TrimSpace(n.Type))
	if def != nil {
		typ = def.Type
	}

	el := &element{tag: "div"}
	text := func() { el.text = p.Text("text") }
	setAttr := func(name, key string) {
		if v := strings.TrimSpace(p.Text(key)); v != "" {
			el.attrs = append(el.attrs, attr{name, v})
		}
	}
	flag := func(name, key string) {
		if p.Get(key).Truthy() {
			el.flags = append(el.flags, name)
		}
	}
	action := func(key string) {
		if v := strings.TrimSpace(p.Text(key)); v != "" {
			el.attrs = append(el.attrs, attr{"data-action", v})
		}
	}

	switch typ {
	case "container", "grid", "flex", "card", "spacer":
		el.tag = "div"
	case "section":
		el.tag = "section"
	case "divider":
		el.tag = "hr"
	case "heading":
		el.tag = "h" + strconv.Itoa(headingLevel(p.Get("level")))
		text()
	case "text":
		el.tag = "p"
		text()
	case "link":
		el.tag = "a"
		setAttr("href", "href")
		if p.Get("external").Truthy() {
			el.attrs = append(el.attrs, attr{"target", "_blank"}, attr{"rel", "noopener noreferrer"})
		}
		text()
	case "button":
		if strings.TrimSpace(p.Text("href")) != "" {
			el.tag = "a"
			setAttr("href", "href")
			el.attrs = append(el.attrs, attr{"role", "button"})
		} else {
			el.tag = "button"
			typeAttr := p.Text("type")
			if typeAttr == "" {
				typeAttr = "button"
			}
			el.attrs = append(el.attrs, attr{"type", typeAttr})
			flag("disabled", "disabled")
		}
		action("onClick")
		text()
	case "input":
		el.tag = "input"
		setAttr("type", "inputType")
		setAttr("name", "name")
		setAttr("placeholder", "placeholder")
		setAttr("aria-label", "label")
		flag("required", "required")
	case "textarea":
		el.tag = "textarea"
		setAttr("name", "name")
		setAttr("placeholder", "placeholder")
		setAttr("rows", "rows")
		flag("required", "required")
	case "select":
		el.tag = "select"
		setAttr("name", "name")
		flag("required", "required")
		for _, opt := range p.Get("options").Items() {
			el.children = append(el.children, &element{tag: "option", attrs: []attr{{"value", opt}}, text: opt})
		}
	case "checkbox":
		el.tag = "label"
		box := &element{tag: "input", void: true, attrs: []attr{{"type", "checkbox"}}}
		if v := strings.TrimSpace(p.Text("name")); v != "" {
			box.attrs = append(box.attrs, attr{"name", v})
		}
		if p.Get("checked").Truthy() {
			box.flags = append(box.flags, "checked")
		}
		el.children = append(el.children, box)
		el.text = p.Text("text")
		el.textLast = true
	case "form":
		el.tag = "form"
		action("onSubmit")
	case "image":
		el.tag = "img"
		setAttr("src", "src")
		setAttr("alt", "alt")
	case "icon":
		el.tag = "span"
		setAttr("data-icon", "icon")
		el.attrs = append(el.attrs, attr{"aria-hidden", "true"})
	case "video":
		el.tag = "video"
		setAttr("src", "src")
		flag("controls", "controls")
		if p.Get("autoplay").Truthy() {
			el.flags = append(el.flags, "autoplay")
			if desc := def.Descriptor("muted"); desc != nil && def.Visible(desc, p) {
				muted := p.Get("muted")
				if !p.Has("muted") {
					muted = desc.Default
				}
				if muted.Truthy() {
					el.flags = append(el.flags, "muted")
				}
			}
		}
	case "navbar":
		el.tag = "nav"
	case "list":
		el.tag = "ul"
		if p.Get("ordered").Truthy() {
			el.tag = "ol"
		}
	case "list-item":
		el.tag = "li"
		text()
	default:
		el.comment = "Unknown component: " + n.Type
		text()
	}
	el.void = voidTags[el.tag]

	switch styling {
	case StylingTailwind:
		el.classes = tailwindFor(typ, p)
	default:
		el.style = cssFor(typ, p)
	}

	if !el.void {
		for _, c := range n.Children {
			el.children = append(el.children, build(c, styling))
		}
	}
	return el
}

// headingLevel clamps level to 1..6, defaulting to 2.
func headingLevel(v props.Value) int {
	n, ok := v.Float()
	if !ok {
		return 2
	}
	level := int(n)
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
