package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/revolutionary-ui/revui/internal/builder"
	cerr "github.com/revolutionary-ui/revui/internal/errors"
	"github.com/revolutionary-ui/revui/internal/registry"
)

// ShortIDLen is how many characters of an id the tree view shows.
const ShortIDLen = 8

// TreeOptions controls tree rendering.
type TreeOptions struct {
	ShortIDs bool   // abbreviate ids to ShortIDLen characters
	Selected string // id to mark with *
}

// Outline renders the tree as plain text, one node per line.
func Outline(nodes []*builder.Node, opts TreeOptions) string {
	var b strings.Builder
	writeTree(&b, nodes, "", opts, false)
	return b.String()
}

// PrintTree writes the tree to w using the current theme.
func PrintTree(w io.Writer, nodes []*builder.Node, opts TreeOptions) {
	if len(nodes) == 0 {
		fmt.Fprintln(w, Muted("(empty canvas)"))
		return
	}
	var b strings.Builder
	writeTree(&b, nodes, "", opts, ColorEnabled)
	io.WriteString(w, b.String())
}

func writeTree(b *strings.Builder, nodes []*builder.Node, prefix string, opts TreeOptions, color bool) {
	paint := func(role ColorRole, s string) string {
		if color {
			return Colorize(role, s)
		}
		return s
	}

	for i, n := range nodes {
		last := i == len(nodes)-1
		branch, indent := "├── ", "│   "
		if last {
			branch, indent = "└── ", "    "
		}

		id := n.ID
		if opts.ShortIDs && len(id) > ShortIDLen {
			id = id[:ShortIDLen]
		}

		fmt.Fprintf(b, "%s%s%s", prefix, branch, paint(RoleAccent, n.Type))
		if n.Name != "" && !isDefaultName(n) {
			fmt.Fprintf(b, " %q", n.Name)
		}
		if text := n.Props.Text("text"); text != "" {
			fmt.Fprintf(b, " %s", paint(RoleInfo, fmt.Sprintf("%q", truncate(text, 32))))
		}
		fmt.Fprintf(b, " %s", paint(RoleMuted, id))

		var flags []string
		if n.ID == opts.Selected && n.ID != "" {
			flags = append(flags, "selected")
		}
		if n.Locked {
			flags = append(flags, "locked")
		}
		if !n.IsVisible() {
			flags = append(flags, "hidden")
		}
		if len(flags) > 0 {
			fmt.Fprintf(b, " %s", paint(RoleWarn, "["+strings.Join(flags, ", ")+"]"))
		}
		b.WriteString("\n")

		writeTree(b, n.Children, prefix+indent, opts, color)
	}
}

func isDefaultName(n *builder.Node) bool {
	def := registry.Get(n.Type)
	return def != nil && def.Name == n.Name
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// PrintDiagnostics writes each finding on its own line with the theme's
// severity colors and a summary line.
func PrintDiagnostics(w io.Writer, ds *cerr.Diagnostics) {
	for _, d := range ds.All() {
		switch d.Severity {
		case cerr.SeverityError:
			fmt.Fprintln(w, Error(d.Format()))
		case cerr.SeverityWarning:
			fmt.Fprintln(w, Warn(d.Format()))
		default:
			fmt.Fprintln(w, Muted("· "+d.Format()))
		}
		if d.Suggestion != "" {
			fmt.Fprintf(w, "  %s\n", Info(d.Suggestion))
		}
	}

	errs, warns := len(ds.Errors()), len(ds.Warnings())
	switch {
	case errs == 0 && warns == 0:
		fmt.Fprintln(w, Success("No problems found"))
	default:
		fmt.Fprintln(w, Muted(fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)))
	}
}

// PrintComponents lists registry definitions grouped by category.
func PrintComponents(w io.Writer, defs []*registry.Definition) {
	category := ""
	for _, d := range defs {
		if d.Category != category {
			if category != "" {
				fmt.Fprintln(w)
			}
			category = d.Category
			fmt.Fprintln(w, Heading(category))
		}
		var notes []string
		switch {
		case d.AcceptsChildren && len(d.ChildTypes) > 0:
			notes = append(notes, "children: "+strings.Join(d.ChildTypes, ", "))
		case d.AcceptsChildren:
			notes = append(notes, "container")
		}
		if len(d.ParentTypes) > 0 {
			notes = append(notes, "inside: "+strings.Join(d.ParentTypes, ", "))
		}
		line := fmt.Sprintf("  %s %s", Accent(fmt.Sprintf("%-10s", d.Type)), d.Name)
		if len(notes) > 0 {
			line += "  " + Muted("("+strings.Join(notes, "; ")+")")
		}
		fmt.Fprintln(w, line)
	}
}
