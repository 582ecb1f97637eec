package registry

import "github.com/revolutionary-ui/revui/internal/props"

// Categories used by the palette.
const (
	CategoryLayout     = "layout"
	CategoryTypography = "typography"
	CategoryForms      = "forms"
	CategoryMedia      = "media"
	CategoryNavigation = "navigation"
	CategoryData       = "data"
)

func f(v float64) *float64 { return &v }

func str(name, label, def string) PropDescriptor {
	return PropDescriptor{Name: name, Label: label, Kind: KindString, Default: props.String(def)}
}

func num(name, label string, def, min, max float64) PropDescriptor {
	return PropDescriptor{Name: name, Label: label, Kind: KindNumber, Default: props.Number(def), Min: f(min), Max: f(max)}
}

func boolean(name, label string, def bool) PropDescriptor {
	return PropDescriptor{Name: name, Label: label, Kind: KindBoolean, Default: props.Bool(def)}
}

func sel(name, label, def string, options ...string) PropDescriptor {
	return PropDescriptor{Name: name, Label: label, Kind: KindSelect, Default: props.String(def), Options: options}
}

func color(name, label, def string) PropDescriptor {
	return PropDescriptor{Name: name, Label: label, Kind: KindColor, Default: props.String(def)}
}

func spacing(name, label, def string) PropDescriptor {
	return PropDescriptor{Name: name, Label: label, Kind: KindSpacing, Default: props.String(def)}
}

// boxProps are the layout properties shared by every container-like type.
func boxProps() []PropDescriptor {
	return []PropDescriptor{
		spacing("padding", "Padding", "16px"),
		spacing("margin", "Margin", "0px"),
		color("backgroundColor", "Background", "transparent"),
		spacing("borderRadius", "Corner radius", "0px"),
	}
}

// order fixes palette order; definitions is keyed by type.
var order []string

var definitions = map[string]*Definition{}

func register(d *Definition) {
	if d.DefaultProps == nil {
		d.DefaultProps = props.Props{}
	}
	definitions[d.Type] = d
	order = append(order, d.Type)
}

func init() {
	// Layout
	register(&Definition{
		Type: "container", Name: "Container", Category: CategoryLayout, Icon: "square",
		DefaultProps: props.Props{
			"padding":         props.String("16px"),
			"backgroundColor": props.String("transparent"),
		},
		Editable:        boxProps(),
		AcceptsChildren: true,
	})
	register(&Definition{
		Type: "section", Name: "Section", Category: CategoryLayout, Icon: "layout",
		DefaultProps: props.Props{
			"padding":         props.String("48px"),
			"backgroundColor": props.String("#ffffff"),
		},
		Editable:        boxProps(),
		AcceptsChildren: true,
	})
	register(&Definition{
		Type: "grid", Name: "Grid", Category: CategoryLayout, Icon: "grid",
		DefaultProps: props.Props{
			"columns": props.Number(3),
			"gap":     props.String("16px"),
		},
		Editable: append([]PropDescriptor{
			num("columns", "Columns", 3, 1, 12),
			spacing("gap", "Gap", "16px"),
		}, boxProps()...),
		AcceptsChildren: true,
	})
	register(&Definition{
		Type: "flex", Name: "Flex Row", Category: CategoryLayout, Icon: "columns",
		DefaultProps: props.Props{
			"direction": props.String("row"),
			"gap":       props.String("8px"),
			"align":     props.String("center"),
			"justify":   props.String("start"),
		},
		Editable: append([]PropDescriptor{
			sel("direction", "Direction", "row", "row", "column"),
			spacing("gap", "Gap", "8px"),
			sel("align", "Align items", "center", "start", "center", "end", "stretch"),
			sel("justify", "Justify", "start", "start", "center", "end", "between", "around"),
			boolean("wrap", "Wrap", false),
		}, boxProps()...),
		AcceptsChildren: true,
	})
	register(&Definition{
		Type: "card", Name: "Card", Category: CategoryLayout, Icon: "credit-card",
		DefaultProps: props.Props{
			"padding":         props.String("24px"),
			"backgroundColor": props.String("#ffffff"),
			"borderRadius":    props.String("8px"),
			"shadow":          props.String("md"),
		},
		Editable: append([]PropDescriptor{
			sel("shadow", "Shadow", "md", "none", "sm", "md", "lg", "xl"),
		}, boxProps()...),
		AcceptsChildren: true,
	})
	register(&Definition{
		Type: "divider", Name: "Divider", Category: CategoryLayout, Icon: "minus",
		DefaultProps: props.Props{
			"color":  props.String("#e5e7eb"),
			"margin": props.String("16px"),
		},
		Editable: []PropDescriptor{
			color("color", "Color", "#e5e7eb"),
			spacing("margin", "Margin", "16px"),
		},
	})
	register(&Definition{
		Type: "spacer", Name: "Spacer", Category: CategoryLayout, Icon: "move-vertical",
		DefaultProps: props.Props{
			"height": props.String("32px"),
		},
		Editable: []PropDescriptor{
			spacing("height", "Height", "32px"),
		},
	})

	// Typography
	register(&Definition{
		Type: "heading", Name: "Heading", Category: CategoryTypography, Icon: "heading",
		DefaultProps: props.Props{
			"text":       props.String("Heading"),
			"level":      props.Number(2),
			"fontSize":   props.String("32px"),
			"fontWeight": props.String("700"),
			"color":      props.String("#111827"),
		},
		Editable: []PropDescriptor{
			str("text", "Text", "Heading"),
			num("level", "Level", 2, 1, 6),
			spacing("fontSize", "Font size", "32px"),
			sel("fontWeight", "Weight", "700", "300", "400", "500", "600", "700", "800"),
			color("color", "Color", "#111827"),
			sel("textAlign", "Align", "left", "left", "center", "right"),
		},
	})
	register(&Definition{
		Type: "text", Name: "Text", Category: CategoryTypography, Icon: "type",
		DefaultProps: props.Props{
			"text":     props.String("Lorem ipsum dolor sit amet."),
			"fontSize": props.String("16px"),
			"color":    props.String("#374151"),
		},
		Editable: []PropDescriptor{
			str("text", "Text", "Lorem ipsum dolor sit amet."),
			spacing("fontSize", "Font size", "16px"),
			sel("fontWeight", "Weight", "400", "300", "400", "500", "600", "700"),
			color("color", "Color", "#374151"),
			sel("textAlign", "Align", "left", "left", "center", "right"),
		},
	})
	register(&Definition{
		Type: "link", Name: "Link", Category: CategoryTypography, Icon: "link",
		DefaultProps: props.Props{
			"text":  props.String("Learn more"),
			"href":  props.String("#"),
			"color": props.String("#3b82f6"),
		},
		Editable: []PropDescriptor{
			str("text", "Text", "Learn more"),
			str("href", "URL", "#"),
			boolean("external", "Open in new tab", false),
			color("color", "Color", "#3b82f6"),
		},
	})

	// Forms
	register(&Definition{
		Type: "button", Name: "Button", Category: CategoryForms, Icon: "mouse-pointer",
		DefaultProps: props.Props{
			"text":            props.String("Click me"),
			"variant":         props.String("primary"),
			"padding":         props.String("8px"),
			"backgroundColor": props.String("#3b82f6"),
			"color":           props.String("#ffffff"),
			"borderRadius":    props.String("6px"),
		},
		Editable: []PropDescriptor{
			str("text", "Label", "Click me"),
			sel("variant", "Variant", "primary", "primary", "secondary", "outline", "ghost"),
			sel("type", "Type", "button", "button", "submit", "reset"),
			{Name: "onClick", Label: "On click", Kind: KindAction},
			str("href", "Link target", ""),
			boolean("disabled", "Disabled", false),
			spacing("padding", "Padding", "8px"),
			color("backgroundColor", "Background", "#3b82f6"),
			color("color", "Text color", "#ffffff"),
			spacing("borderRadius", "Corner radius", "6px"),
		},
	})
	register(&Definition{
		Type: "input", Name: "Input", Category: CategoryForms, Icon: "text-cursor",
		DefaultProps: props.Props{
			"placeholder": props.String("Enter text..."),
			"inputType":   props.String("text"),
			"padding":     props.String("8px"),
		},
		Editable: []PropDescriptor{
			str("label", "Label", ""),
			str("placeholder", "Placeholder", "Enter text..."),
			sel("inputType", "Input type", "text", "text", "email", "password", "number", "tel", "url"),
			str("name", "Field name", ""),
			boolean("required", "Required", false),
			spacing("padding", "Padding", "8px"),
		},
	})
	register(&Definition{
		Type: "textarea", Name: "Text Area", Category: CategoryForms, Icon: "align-left",
		DefaultProps: props.Props{
			"placeholder": props.String("Enter text..."),
			"rows":        props.Number(4),
		},
		Editable: []PropDescriptor{
			str("placeholder", "Placeholder", "Enter text..."),
			num("rows", "Rows", 4, 1, 20),
			str("name", "Field name", ""),
			boolean("required", "Required", false),
		},
	})
	register(&Definition{
		Type: "select", Name: "Select", Category: CategoryForms, Icon: "chevron-down",
		DefaultProps: props.Props{
			"options": props.List("Option 1", "Option 2", "Option 3"),
		},
		Editable: []PropDescriptor{
			{Name: "options", Label: "Options", Kind: KindString, Default: props.List("Option 1", "Option 2", "Option 3")},
			str("name", "Field name", ""),
			boolean("required", "Required", false),
		},
	})
	register(&Definition{
		Type: "checkbox", Name: "Checkbox", Category: CategoryForms, Icon: "check-square",
		DefaultProps: props.Props{
			"text":    props.String("I agree"),
			"checked": props.Bool(false),
		},
		Editable: []PropDescriptor{
			str("text", "Label", "I agree"),
			boolean("checked", "Checked", false),
			str("name", "Field name", ""),
		},
	})
	register(&Definition{
		Type: "form", Name: "Form", Category: CategoryForms, Icon: "file-text",
		DefaultProps: props.Props{
			"padding": props.String("16px"),
			"gap":     props.String("12px"),
		},
		Editable: append([]PropDescriptor{
			{Name: "onSubmit", Label: "On submit", Kind: KindAction},
			spacing("gap", "Gap", "12px"),
		}, boxProps()...),
		AcceptsChildren: true,
	})

	// Media
	register(&Definition{
		Type: "image", Name: "Image", Category: CategoryMedia, Icon: "image",
		DefaultProps: props.Props{
			"src":   props.String("https://via.placeholder.com/400x300"),
			"alt":   props.String("Image"),
			"width": props.String("100%"),
		},
		Editable: []PropDescriptor{
			{Name: "src", Label: "Source", Kind: KindImage, Default: props.String("https://via.placeholder.com/400x300")},
			str("alt", "Alt text", "Image"),
			str("width", "Width", "100%"),
			str("height", "Height", ""),
			spacing("borderRadius", "Corner radius", "0px"),
		},
	})
	register(&Definition{
		Type: "icon", Name: "Icon", Category: CategoryMedia, Icon: "star",
		DefaultProps: props.Props{
			"icon":     props.String("star"),
			"fontSize": props.String("24px"),
			"color":    props.String("#111827"),
		},
		Editable: []PropDescriptor{
			{Name: "icon", Label: "Icon", Kind: KindIcon, Default: props.String("star")},
			spacing("fontSize", "Size", "24px"),
			color("color", "Color", "#111827"),
		},
	})
	register(&Definition{
		Type: "video", Name: "Video", Category: CategoryMedia, Icon: "film",
		DefaultProps: props.Props{
			"src":      props.String(""),
			"controls": props.Bool(true),
			"width":    props.String("100%"),
		},
		Editable: []PropDescriptor{
			str("src", "Source", ""),
			boolean("controls", "Show controls", true),
			boolean("autoplay", "Autoplay", false),
			{Name: "muted", Label: "Muted", Kind: KindBoolean, Default: props.Bool(true), ShowIf: &Condition{Prop: "autoplay", Equals: props.Bool(true)}},
			str("width", "Width", "100%"),
		},
	})

	// Navigation
	register(&Definition{
		Type: "navbar", Name: "Navbar", Category: CategoryNavigation, Icon: "menu",
		DefaultProps: props.Props{
			"padding":         props.String("16px"),
			"backgroundColor": props.String("#ffffff"),
			"direction":       props.String("row"),
			"justify":         props.String("between"),
			"align":           props.String("center"),
		},
		Editable: append([]PropDescriptor{
			boolean("sticky", "Sticky", false),
			sel("justify", "Justify", "between", "start", "center", "end", "between"),
		}, boxProps()...),
		AcceptsChildren: true,
		ChildTypes:      []string{"link", "button", "heading", "text", "image", "icon", "flex", "container"},
	})

	// Data
	register(&Definition{
		Type: "list", Name: "List", Category: CategoryData, Icon: "list",
		DefaultProps: props.Props{
			"ordered": props.Bool(false),
		},
		Editable: []PropDescriptor{
			boolean("ordered", "Ordered", false),
			{Name: "marker", Label: "Marker", Kind: KindSelect, Default: props.String("decimal"), Options: []string{"decimal", "lower-alpha", "upper-roman"}, ShowIf: &Condition{Prop: "ordered", Equals: props.Bool(true)}},
			spacing("gap", "Gap", "4px"),
		},
		AcceptsChildren: true,
		ChildTypes:      []string{"list-item"},
	})
	register(&Definition{
		Type: "list-item", Name: "List Item", Category: CategoryData, Icon: "dot",
		DefaultProps: props.Props{
			"text": props.String("List item"),
		},
		Editable: []PropDescriptor{
			str("text", "Text", "List item"),
		},
		AcceptsChildren: true,
		ParentTypes:     []string{"list"},
	})
}
