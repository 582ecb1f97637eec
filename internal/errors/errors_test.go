package errors

import (
	"encoding/json"
	"strings"
	"testing"
)

// ── Diagnostics ──

func TestAddAndFilter(t *testing.T) {
	ds := New("canvas.json")
	ds.AddError("E101", Location{Path: "$[0]"}, "duplicate id")
	ds.AddWarning("W101", Location{Path: "$[1]"}, "unknown type")
	ds.AddErrorWithSuggestion("E102", Location{}, "refused child", `Did you mean "list-item"?`)

	if len(ds.All()) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(ds.All()))
	}
	if len(ds.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(ds.Errors()))
	}
	if len(ds.Warnings()) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(ds.Warnings()))
	}
	if got := strings.Join(ds.Codes(), ","); got != "E101,W101,E102" {
		t.Fatalf("codes = %q", got)
	}
}

func TestHasErrorsAndWarnings(t *testing.T) {
	ds := New("")

	if ds.HasErrors() || ds.HasWarnings() {
		t.Fatal("expected an empty collection")
	}

	ds.AddWarning("W101", Location{}, "something odd")
	if ds.HasErrors() {
		t.Fatal("expected no errors after adding only a warning")
	}
	if !ds.HasWarnings() {
		t.Fatal("expected HasWarnings to be true")
	}

	ds.AddError("E101", Location{}, "bad tree")
	if !ds.HasErrors() {
		t.Fatal("expected HasErrors to be true")
	}
}

func TestDefaultFile(t *testing.T) {
	ds := New("canvas.json")
	ds.AddError("E101", Location{}, "test error")
	ds.Add(&Diagnostic{Code: "E102", Severity: SeverityError, File: "other.json"})

	errs := ds.Errors()
	if errs[0].File != "canvas.json" {
		t.Fatalf("expected default file, got %q", errs[0].File)
	}
	if errs[1].File != "other.json" {
		t.Fatalf("expected explicit file to win, got %q", errs[1].File)
	}
}

// ── Format ──

func TestDiagnosticFormat(t *testing.T) {
	d := &Diagnostic{
		Code:     "W101",
		Message:  `unknown component type "buton"`,
		File:     "canvas.json",
		Location: Location{Path: "$[0].children[1]", NodeID: "n1"},
	}
	want := `canvas.json: $[0].children[1]: unknown component type "buton" [W101]`
	if got := d.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDiagnosticsFormat(t *testing.T) {
	ds := New("")
	ds.AddWarningWithSuggestion("W101", Location{Path: "$[0]"}, `unknown component type "buton"`, `Did you mean "button"?`)
	ds.AddError("E101", Location{Path: "$[1]"}, `duplicate id "a"`)

	out := ds.Format()
	for _, want := range []string{"⚠", "✗", "suggestion:", `Did you mean "button"?`, "[W101]", "[E101]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestDiagnosticJSON(t *testing.T) {
	d := Diagnostic{Code: "E101", Severity: SeverityError, Message: "m", Location: Location{Path: "$[0]", NodeID: "x"}}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"code":"E101","severity":"error","message":"m","path":"$[0]","nodeId":"x"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

// ── Edit distance ──

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "xyz", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"button", "buttons", 1},
		{"button", "buttno", 1}, // adjacent swap is one edit
		{"héading", "heading", 1},
	}

	for _, tc := range tests {
		got := editDistance([]rune(tc.a), []rune(tc.b))
		if got != tc.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// ── Similarity ──

func TestSimilarity(t *testing.T) {
	if s := Similarity("Card", "card"); s != 1.0 {
		t.Errorf("expected 1.0 for case-insensitive identical, got %f", s)
	}
	if s := Similarity("", ""); s != 1.0 {
		t.Errorf("expected 1.0 for both empty, got %f", s)
	}
	if s := Similarity("heading", "headng"); s < 0.8 {
		t.Errorf("expected high similarity for heading/headng, got %f", s)
	}
	if s := Similarity("abc", "xyz"); s > 0.1 {
		t.Errorf("expected low similarity for abc/xyz, got %f", s)
	}
}

// ── FindClosest ──

func TestFindClosest(t *testing.T) {
	candidates := []string{"container", "card", "checkbox", "button"}

	tests := []struct {
		target string
		want   string
	}{
		{"buton", "button"},
		{"crad", "card"},
		{"checkbx", "checkbox"},
		{"zzzzzzzz", ""},
		{"card", "card"},
	}
	for _, tc := range tests {
		if got := FindClosest(tc.target, candidates, 0.6); got != tc.want {
			t.Errorf("FindClosest(%q) = %q, want %q", tc.target, got, tc.want)
		}
	}

	if got := FindClosest("anything", nil, 0.6); got != "" {
		t.Errorf("FindClosest on empty candidates = %q, want empty", got)
	}
}

func TestDidYouMean(t *testing.T) {
	if got := DidYouMean("headng", []string{"heading", "text"}, 0.6); got != `Did you mean "heading"?` {
		t.Errorf("DidYouMean = %q", got)
	}
	if got := DidYouMean("qqq", []string{"heading"}, 0.6); got != "" {
		t.Errorf("DidYouMean = %q, want empty", got)
	}
}
