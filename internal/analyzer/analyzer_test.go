package analyzer

import (
	"strings"
	"testing"

	"github.com/revolutionary-ui/revui/internal/builder"
	cerr "github.com/revolutionary-ui/revui/internal/errors"
	"github.com/revolutionary-ui/revui/internal/props"
	"github.com/revolutionary-ui/revui/internal/templates"
)

func node(id, typ string, children ...*builder.Node) *builder.Node {
	return &builder.Node{ID: id, Type: typ, Name: typ, Props: props.Props{}, Children: children}
}

// helper to build a small valid canvas
func minTree() []*builder.Node {
	return []*builder.Node{
		node("c1", "container",
			node("h1", "heading"),
			node("l1", "list", node("li1", "list-item"), node("li2", "list-item")),
		),
		node("b1", "button"),
	}
}

// ── Passes cleanly ──

func TestAnalyzeCleanTree(t *testing.T) {
	errs := Analyze(minTree(), "canvas.json")
	if errs.HasErrors() || errs.HasWarnings() {
		t.Fatalf("expected a clean tree, got:\n%s", errs.Format())
	}
}

func TestAnalyzeEmptyTree(t *testing.T) {
	if errs := Analyze(nil, ""); len(errs.All()) != 0 {
		t.Fatalf("expected nothing for an empty canvas, got:\n%s", errs.Format())
	}
}

func TestTemplatesAnalyzeClean(t *testing.T) {
	for _, tpl := range templates.All() {
		errs := Analyze(tpl.Components, tpl.ID)
		if errs.HasErrors() || errs.HasWarnings() {
			t.Errorf("template %s:\n%s", tpl.ID, errs.Format())
		}
	}
}

// ── Identity ──

func TestDuplicateID(t *testing.T) {
	tree := minTree()
	tree[1].ID = "h1"
	errs := Analyze(tree, "")
	assertCode(t, errs.Errors(), CodeDuplicateID)

	d := errs.Errors()[0]
	if d.Path != "$[1]" {
		t.Errorf("expected the second use to be reported, got %s", d.Path)
	}
	if !strings.Contains(d.Message, "$[0].children[0]") {
		t.Errorf("expected first use in message, got %q", d.Message)
	}
}

func TestMissingID(t *testing.T) {
	tree := minTree()
	tree[0].Children[0].ID = ""
	assertCode(t, Analyze(tree, "").Errors(), CodeMissingID)
}

func TestMissingType(t *testing.T) {
	tree := minTree()
	tree[1].Type = " "
	assertCode(t, Analyze(tree, "").Errors(), CodeMissingType)
}

func TestNullNode(t *testing.T) {
	tree := append(minTree(), nil)
	errs := Analyze(tree, "")
	assertCode(t, errs.Errors(), CodeMissingType)
	if got := errs.Errors()[0].Path; got != "$[2]" {
		t.Errorf("path = %s", got)
	}
}

// ── Types ──

func TestUnknownTypeSuggestion(t *testing.T) {
	tree := minTree()
	tree[1].Type = "buton"
	errs := Analyze(tree, "")
	if errs.HasErrors() {
		t.Fatalf("unknown types are warnings, got:\n%s", errs.Format())
	}
	assertCode(t, errs.Warnings(), CodeUnknownType)
	if got := errs.Warnings()[0].Suggestion; got != `Did you mean "button"?` {
		t.Errorf("suggestion = %q", got)
	}
}

func TestUnknownTypeNoSuggestion(t *testing.T) {
	tree := []*builder.Node{node("x", "carousel")}
	errs := Analyze(tree, "")
	assertCode(t, errs.Warnings(), CodeUnknownType)
	if s := errs.Warnings()[0].Suggestion; s != "" {
		t.Errorf("expected no suggestion, got %q", s)
	}
}

func TestChildrenOfUnknownTypeAreStillChecked(t *testing.T) {
	tree := []*builder.Node{node("x", "carousel", node("x", "text"))}
	errs := Analyze(tree, "")
	assertCode(t, errs.Errors(), CodeDuplicateID)
}

// ── Placement ──

func TestRefusedChild(t *testing.T) {
	tests := []struct {
		name string
		tree []*builder.Node
		path string
	}{
		{"leaf parent", []*builder.Node{node("b", "button", node("t", "text"))}, "$[0].children[0]"},
		{"list takes items only", []*builder.Node{node("l", "list", node("b", "button"))}, "$[0].children[0]"},
		{"item outside list", []*builder.Node{node("c", "container", node("i", "list-item"))}, "$[0].children[0]"},
		{"navbar refuses form", []*builder.Node{node("n", "navbar", node("f", "form"))}, "$[0].children[0]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := Analyze(tc.tree, "")
			assertCode(t, errs.Errors(), CodeRefusedChild)
			if got := errs.Errors()[0].Path; got != tc.path {
				t.Errorf("path = %s, want %s", got, tc.path)
			}
		})
	}
}

func TestRestrictedAtTopLevel(t *testing.T) {
	errs := Analyze([]*builder.Node{node("i", "list-item")}, "")
	if errs.HasErrors() {
		t.Fatalf("expected only a warning, got:\n%s", errs.Format())
	}
	assertCode(t, errs.Warnings(), CodeRestrictedTop)
}

// ── Props ──

func TestUnknownPropSuggestion(t *testing.T) {
	tree := minTree()
	tree[1].Props = props.Props{"varient": props.String("primary")}
	errs := Analyze(tree, "")
	assertCode(t, errs.Warnings(), CodeUnknownProp)
	if got := errs.Warnings()[0].Suggestion; got != `Did you mean "variant"?` {
		t.Errorf("suggestion = %q", got)
	}
	if got := errs.Warnings()[0].Prop; got != "varient" {
		t.Errorf("prop = %q, want varient", got)
	}
}

func TestInvalidPropValues(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		key   string
		value props.Value
	}{
		{"level above max", "heading", "level", props.Number(9)},
		{"level not a number", "heading", "level", props.String("big")},
		{"bad option", "button", "variant", props.String("shiny")},
		{"bool expected", "checkbox", "checked", props.String("yes")},
		{"color as list", "text", "color", props.List("#fff", "#000")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := node("x", tc.typ)
			n.Props[tc.key] = tc.value
			errs := Analyze([]*builder.Node{n}, "")
			assertCode(t, errs.Warnings(), CodeInvalidValue)
		})
	}
}

func TestInactiveProp(t *testing.T) {
	v := node("v", "video")
	v.Props["muted"] = props.Bool(false)
	assertCode(t, Analyze([]*builder.Node{v}, "").Warnings(), CodeInactiveProp)

	v.Props["autoplay"] = props.Bool(true)
	if errs := Analyze([]*builder.Node{v}, ""); errs.HasWarnings() {
		t.Fatalf("muted applies once autoplay is on, got:\n%s", errs.Format())
	}
}

func TestDefaultOnlyPropsAreKnown(t *testing.T) {
	n := node("s", "section")
	for k, v := range registryDefaults("section") {
		n.Props[k] = v
	}
	if errs := Analyze([]*builder.Node{n}, ""); errs.HasWarnings() {
		t.Fatalf("registry defaults should be accepted, got:\n%s", errs.Format())
	}
}

// ── Output ──

func TestDiagnosticsCarryFileAndNode(t *testing.T) {
	tree := minTree()
	tree[0].Children[1].Children[0].Type = "lst-item"
	errs := Analyze(tree, "canvas.json")
	w := errs.Warnings()
	if len(w) == 0 {
		t.Fatal("expected a warning")
	}
	if w[0].File != "canvas.json" || w[0].NodeID != "li1" || w[0].Path != "$[0].children[1].children[0]" {
		t.Errorf("unexpected location: %+v", w[0])
	}
}

// ── Helpers ──

func registryDefaults(typ string) props.Props {
	s := builder.Reduce(builder.New(builder.DefaultSettings()), builder.Add{Type: typ})
	return s.Components[0].Props
}

func assertCode(t *testing.T, diags []*cerr.Diagnostic, code string) {
	t.Helper()
	for _, d := range diags {
		if d.Code == code {
			return
		}
	}
	t.Errorf("expected at least one diagnostic with code %s, found none", code)
}
