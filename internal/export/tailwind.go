package export

import (
	"strconv"
	"strings"

	"github.com/revolutionary-ui/revui/internal/props"
)

// Tailwind output collapses continuous values into utility buckets. The
// boundaries are part of the output format: changing them changes exports.
//
//	spacing (p-, m-, gap-):  0 → 0, ≤4px → 1, ≤8px → 2, ≤16px → 4,
//	                         ≤24px → 6, ≤32px → 8, above → 12
//	font size (text-):       ≤12 xs, ≤14 sm, ≤16 base, ≤18 lg, ≤20 xl,
//	                         ≤24 2xl, ≤30 3xl, ≤36 4xl, ≤48 5xl, above 6xl
//	radius (rounded):        0 none, ≤2 sm, ≤4 (plain), ≤6 md, ≤8 lg,
//	                         ≤12 xl, ≤16 2xl, ≤24 3xl, above full
//
// Values that are not pixel lengths (rem is read as 16px) fall back to
// arbitrary-value classes such as p-[5%].

type bucket struct {
	max   float64
	class string
}

var spacingBuckets = []bucket{
	{0, "0"}, {4, "1"}, {8, "2"}, {16, "4"}, {24, "6"}, {32, "8"},
}

const spacingOverflow = "12"

var fontSizeBuckets = []bucket{
	{12, "xs"}, {14, "sm"}, {16, "base"}, {18, "lg"}, {20, "xl"},
	{24, "2xl"}, {30, "3xl"}, {36, "4xl"}, {48, "5xl"},
}

const fontSizeOverflow = "6xl"

var radiusBuckets = []bucket{
	{0, "rounded-none"}, {2, "rounded-sm"}, {4, "rounded"}, {6, "rounded-md"},
	{8, "rounded-lg"}, {12, "rounded-xl"}, {16, "rounded-2xl"}, {24, "rounded-3xl"},
}

var fontWeights = map[string]string{
	"100": "thin", "200": "extralight", "300": "light", "400": "normal",
	"500": "medium", "600": "semibold", "700": "bold", "800": "extrabold",
	"900": "black", "normal": "normal", "bold": "bold",
}

var twFlex = map[string]string{
	"start": "start", "end": "end", "center": "center", "stretch": "stretch",
	"between": "between", "around": "around",
}

// twItems is the subset of twFlex with an items-* utility.
var twItems = map[string]bool{"start": true, "end": true, "center": true, "stretch": true}

// SpacingBucket returns the tailwind scale step for a pixel length.
func SpacingBucket(px float64) string {
	return pick(spacingBuckets, px, spacingOverflow)
}

func pick(buckets []bucket, v float64, overflow string) string {
	for _, b := range buckets {
		if v <= b.max {
			return b.class
		}
	}
	return overflow
}

// PropsToTailwindClasses translates style props to utility classes, in a
// fixed prop order. Props without a tailwind meaning are ignored.
func PropsToTailwindClasses(p props.Props) []string {
	var out []string
	for _, key := range []string{"width", "height", "padding", "margin", "gap", "backgroundColor", "color", "fontSize", "fontWeight", "textAlign", "borderRadius"} {
		v, ok := p[key]
		if !ok || v.IsZero() {
			continue
		}
		if c := twClass(key, v); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func twClass(key string, v props.Value) string {
	switch key {
	case "padding":
		return spacingClass("p-", v)
	case "margin":
		return spacingClass("m-", v)
	case "gap":
		return spacingClass("gap-", v)
	case "width":
		return sizeClass("w-", v)
	case "height":
		return sizeClass("h-", v)
	case "backgroundColor":
		return colorClass("bg-", v)
	case "color":
		return colorClass("text-", v)
	case "fontSize":
		if px, ok := pixels(v); ok {
			return "text-" + pick(fontSizeBuckets, px, fontSizeOverflow)
		}
		return arbitrary("text-", v)
	case "fontWeight":
		if w, ok := fontWeights[strings.ToLower(v.Text())]; ok {
			return "font-" + w
		}
		return arbitrary("font-", v)
	case "textAlign":
		switch a := v.Text(); a {
		case "left", "center", "right", "justify":
			return "text-" + a
		}
		return ""
	case "borderRadius":
		if px, ok := pixels(v); ok {
			return pick(radiusBuckets, px, "rounded-full")
		}
		return arbitrary("rounded-", v)
	}
	return ""
}

func spacingClass(prefix string, v props.Value) string {
	if px, ok := pixels(v); ok {
		return prefix + SpacingBucket(px)
	}
	if strings.TrimSpace(v.Text()) == "auto" {
		return prefix + "auto"
	}
	return arbitrary(prefix, v)
}

func sizeClass(prefix string, v props.Value) string {
	switch strings.TrimSpace(v.Text()) {
	case "100%":
		return prefix + "full"
	case "auto":
		return prefix + "auto"
	}
	return arbitrary(prefix, v)
}

func colorClass(prefix string, v props.Value) string {
	switch c := strings.ToLower(strings.TrimSpace(v.Text())); c {
	case "transparent", "white", "black", "current", "inherit":
		return prefix + c
	case "#fff", "#ffffff":
		return prefix + "white"
	case "#000", "#000000":
		return prefix + "black"
	}
	return arbitrary(prefix, v)
}

// arbitrary renders a tailwind arbitrary-value class; spaces become
// underscores as tailwind requires.
func arbitrary(prefix string, v props.Value) string {
	s := strings.TrimSpace(v.Text())
	if s == "" {
		return ""
	}
	if v.Kind() == props.KindNumber {
		s += "px"
	}
	return prefix + "[" + strings.ReplaceAll(s, " ", "_") + "]"
}

// pixels reads a length in px. Bare numbers are pixels; rem is 16px.
func pixels(v props.Value) (float64, bool) {
	if n, ok := v.Float(); ok {
		return n, true
	}
	s := strings.TrimSpace(strings.ToLower(v.Text()))
	unit := 1.0
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "rem"):
		s = strings.TrimSuffix(s, "rem")
		unit = 16
	default:
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n * unit, true
}

// tailwindFor returns the classes for a node of typ: layout utilities
// implied by the type first, then PropsToTailwindClasses.
func tailwindFor(typ string, p props.Props) []string {
	var out []string
	switch typ {
	case "grid":
		out = append(out, "grid")
		if n, ok := p.Get("columns").Float(); ok && n >= 1 {
			out = append(out, "grid-cols-"+strconv.Itoa(int(n)))
		}
	case "flex", "navbar":
		out = append(out, "flex")
		if p.Text("direction") == "column" {
			out = append(out, "flex-col")
		}
		if a, ok := twFlex[p.Text("align")]; ok && twItems[a] {
			out = append(out, "items-"+a)
		}
		if j, ok := twFlex[p.Text("justify")]; ok && j != "stretch" {
			out = append(out, "justify-"+j)
		}
		if p.Get("wrap").Truthy() {
			out = append(out, "flex-wrap")
		}
		if typ == "navbar" && p.Get("sticky").Truthy() {
			out = append(out, "sticky", "top-0")
		}
	case "form":
		out = append(out, "flex", "flex-col")
	case "card":
		switch s := p.Text("shadow"); s {
		case "none":
			out = append(out, "shadow-none")
		case "sm", "md", "lg", "xl":
			out = append(out, "shadow-"+s)
		}
	case "list":
		if p.Get("ordered").Truthy() {
			out = append(out, "list-decimal")
		} else {
			out = append(out, "list-disc")
		}
	case "divider":
		out = append(out, "border-t")
		if c := colorClass("border-", p.Get("color")); c != "" {
			out = append(out, c)
		}
		if m := spacingClass("my-", p.Get("margin")); m != "" && p.Has("margin") {
			out = append(out, m)
		}
		return out
	}
	return append(out, PropsToTailwindClasses(p)...)
}
