// Package errors collects diagnostics about a component tree: problems the
// reducer would never produce but an imported or hand-edited tree can carry.
package errors

import (
	"fmt"
	"strings"
)

// Severity indicates how serious a diagnostic is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "hint"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Location points at a node: its path from the canvas root
// ("$[0].children[2]") and its id. Prop names the property when the
// finding is about one.
type Location struct {
	Path   string `json:"path,omitempty"`
	NodeID string `json:"nodeId,omitempty"`
	Prop   string `json:"prop,omitempty"`
}

// WithProp returns l narrowed to property name.
func (l Location) WithProp(name string) Location {
	l.Prop = name
	return l
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Code       string   `json:"code"` // "E101" style code
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	File       string   `json:"file,omitempty"`
	Location            // zero if the finding is about the whole tree
	Suggestion string   `json:"suggestion,omitempty"` // e.g. `Did you mean "button"?`
}

// Format returns a single-line representation suitable for terminal output
// (without ANSI; the caller wraps it with cli colors).
func (d *Diagnostic) Format() string {
	var b strings.Builder

	if d.File != "" {
		b.WriteString(d.File)
		b.WriteString(": ")
	}
	if d.Path != "" {
		b.WriteString(d.Path)
		b.WriteString(": ")
	}

	b.WriteString(d.Message)

	if d.Code != "" {
		b.WriteString(" [")
		b.WriteString(d.Code)
		b.WriteString("]")
	}

	return b.String()
}

// Diagnostics collects findings in the order they were produced.
type Diagnostics struct {
	items []*Diagnostic
	file  string // default file context
}

// New creates a collection scoped to a file ("" for an in-memory canvas).
func New(file string) *Diagnostics {
	return &Diagnostics{file: file}
}

// Add appends a diagnostic.
func (ds *Diagnostics) Add(d *Diagnostic) {
	if d.File == "" {
		d.File = ds.file
	}
	ds.items = append(ds.items, d)
}

// AddError records an error at a node.
func (ds *Diagnostics) AddError(code string, at Location, message string) {
	ds.Add(&Diagnostic{Code: code, Severity: SeverityError, Message: message, Location: at})
}

// AddWarning records a warning at a node.
func (ds *Diagnostics) AddWarning(code string, at Location, message string) {
	ds.Add(&Diagnostic{Code: code, Severity: SeverityWarning, Message: message, Location: at})
}

// AddWarningWithSuggestion records a warning carrying a "did you mean" hint.
func (ds *Diagnostics) AddWarningWithSuggestion(code string, at Location, message, suggestion string) {
	ds.Add(&Diagnostic{Code: code, Severity: SeverityWarning, Message: message, Location: at, Suggestion: suggestion})
}

// AddErrorWithSuggestion records an error carrying a "did you mean" hint.
func (ds *Diagnostics) AddErrorWithSuggestion(code string, at Location, message, suggestion string) {
	ds.Add(&Diagnostic{Code: code, Severity: SeverityError, Message: message, Location: at, Suggestion: suggestion})
}

// HasErrors reports whether any SeverityError entry was recorded.
func (ds *Diagnostics) HasErrors() bool {
	return len(ds.Errors()) > 0
}

// HasWarnings reports whether any SeverityWarning entry was recorded.
func (ds *Diagnostics) HasWarnings() bool {
	return len(ds.Warnings()) > 0
}

// Errors returns only the SeverityError entries.
func (ds *Diagnostics) Errors() []*Diagnostic {
	return ds.filter(SeverityError)
}

// Warnings returns only the SeverityWarning entries.
func (ds *Diagnostics) Warnings() []*Diagnostic {
	return ds.filter(SeverityWarning)
}

func (ds *Diagnostics) filter(s Severity) []*Diagnostic {
	var out []*Diagnostic
	for _, d := range ds.items {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// All returns every diagnostic.
func (ds *Diagnostics) All() []*Diagnostic {
	return ds.items
}

// Codes returns the code of every diagnostic, in order.
func (ds *Diagnostics) Codes() []string {
	out := make([]string, len(ds.items))
	for i, d := range ds.items {
		out[i] = d.Code
	}
	return out
}

// Format returns a human-friendly multiline listing.
func (ds *Diagnostics) Format() string {
	var b strings.Builder
	for i, d := range ds.items {
		if i > 0 {
			b.WriteString("\n")
		}

		switch d.Severity {
		case SeverityError:
			fmt.Fprintf(&b, "✗ %s", d.Format())
		case SeverityWarning:
			fmt.Fprintf(&b, "⚠ %s", d.Format())
		case SeverityHint:
			fmt.Fprintf(&b, "· %s", d.Format())
		}

		if d.Suggestion != "" {
			fmt.Fprintf(&b, "\n  suggestion: %s", d.Suggestion)
		}
	}
	return b.String()
}
