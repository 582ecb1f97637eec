package export

import (
	"fmt"
	"strings"
)

// Format selects the kind of output.
type Format string

const (
	FormatCode    Format = "code"
	FormatFactory Format = "factory"
	FormatJSON    Format = "json"
)

// Framework selects the target UI framework for code and factory output.
type Framework string

const (
	React   Framework = "react"
	Vue     Framework = "vue"
	Angular Framework = "angular"
	Svelte  Framework = "svelte"
)

// Styling selects how props become styles in code output.
type Styling string

const (
	StylingCSS      Styling = "css"
	StylingSCSS     Styling = "scss"
	StylingPlain    Styling = "plain"
	StylingTailwind Styling = "tailwind"
)

var (
	formats    = []string{string(FormatCode), string(FormatFactory), string(FormatJSON)}
	frameworks = []string{string(React), string(Vue), string(Angular), string(Svelte)}
	stylings   = []string{string(StylingCSS), string(StylingSCSS), string(StylingPlain), string(StylingTailwind)}
)

// Formats, Frameworks and Stylings list the accepted option values.
func Formats() []string    { return append([]string(nil), formats...) }
func Frameworks() []string { return append([]string(nil), frameworks...) }
func Stylings() []string   { return append([]string(nil), stylings...) }

// Options configures an export.
type Options struct {
	Format         Format    `yaml:"format" json:"format"`
	Framework      Framework `yaml:"framework" json:"framework"`
	Styling        Styling   `yaml:"styling" json:"styling"`
	TypeScript     bool      `yaml:"typescript" json:"typescript"`
	IncludeImports bool      `yaml:"include_imports" json:"includeImports"`
	Prettier       bool      `yaml:"prettier" json:"prettier"`
	ComponentName  string    `yaml:"component_name" json:"componentName"`
}

// DefaultComponentName names the generated component when none is given.
const DefaultComponentName = "GeneratedComponent"

// DefaultOptions returns React code with inline CSS, TypeScript and imports.
func DefaultOptions() Options {
	return Options{
		Format:         FormatCode,
		Framework:      React,
		Styling:        StylingCSS,
		TypeScript:     true,
		IncludeImports: true,
		Prettier:       true,
		ComponentName:  DefaultComponentName,
	}
}

// UnsupportedError reports an option value the exporter does not know.
type UnsupportedError struct {
	Option    string
	Value     string
	Supported []string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s %q (supported: %s)", e.Option, e.Value, strings.Join(e.Supported, ", "))
}

// Validate checks that every option the chosen format consults is known.
func (o Options) Validate() error {
	if !known(formats, string(o.Format)) {
		return &UnsupportedError{Option: "format", Value: string(o.Format), Supported: Formats()}
	}
	if o.Format == FormatJSON {
		return nil
	}
	if !known(frameworks, string(o.Framework)) {
		return &UnsupportedError{Option: "framework", Value: string(o.Framework), Supported: Frameworks()}
	}
	if o.Format == FormatCode && !known(stylings, string(o.Styling)) {
		return &UnsupportedError{Option: "styling", Value: string(o.Styling), Supported: Stylings()}
	}
	return nil
}

func known(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
